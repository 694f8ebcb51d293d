// Package diag defines the notices a conversion produces besides its result.
//
// A Diagnostic is a non-fatal finding: the hex fallback was taken, a requested
// width was widened, decoded bytes were not text. Fatal problems are plain Go
// errors and never become diagnostics.
//
// Producers emit through a Reporter so the pipeline never depends on how
// notices are stored or printed. BagReporter collects them into a Bag owned by
// a single invocation; rendering lives in internal/diagfmt.
//
// # Data model
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: numeric identifier with a stable string form such as LIT1001.
//   - Subject: the command-line argument the notice is about, if any.
//   - Message: short human text, one line.
//   - Notes: optional extra lines of context.
//
// Nothing here is global: each invocation creates its own Bag.
package diag
