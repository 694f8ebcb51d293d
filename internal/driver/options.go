// Package driver runs one conversion end to end: parse the literals, apply
// the optional operation, resolve the width and render, or run the base64
// codec instead. Notices go to the caller's diag.Reporter; nothing is kept
// between runs.
package driver

import (
	"log/slog"

	"github.com/PocketPi/radix/internal/diag"
	"github.com/PocketPi/radix/internal/logging"
	"github.com/PocketPi/radix/internal/observ"
)

// Options carries the per-invocation collaborators. Every field may be left
// nil.
type Options struct {
	Reporter diag.Reporter
	Logger   *slog.Logger
	Timer    *observ.Timer
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}
