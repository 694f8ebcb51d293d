package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// main builds the root command, moves positionals behind "--" so negative
// literals are not taken for flags, and maps the returned error to an exit
// status.
func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "radix: %v\n", err)
		os.Exit(exitCode(err))
	}
}

const (
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks errors caused by how the command was invoked rather than
// by the values given to it.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitFailure
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
