// Package version holds build metadata for the radix CLI.
// The variables can be overridden at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/PocketPi/radix/internal/version.Version=1.2.3"
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders v with its major, minor and patch components in distinct
// colours. Anything after the patch number (pre-release, build) is left
// plain, as is any v that is not dotted.
func Colored(v string, useColor bool) string {
	if !useColor {
		return v
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	paint := func(s string, attrs ...color.Attribute) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(parts[0], color.FgYellow, color.Bold) + "." +
		paint(parts[1], color.FgGreen, color.Bold) + "." +
		paint(patch, color.FgBlue, color.Bold) + rest
}
