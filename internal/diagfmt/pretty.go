package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/PocketPi/radix/internal/diag"
)

// Pretty writes one line per diagnostic in emission order:
//
//	<prefix>: <sev>[<CODE>]: <subject>: <message>
//
// followed by indented notes when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, opts PrettyOpts) error {
	var b strings.Builder
	if opts.Prefix != "" {
		b.WriteString(opts.Prefix)
		b.WriteString(": ")
	}
	b.WriteString(severityLabel(d.Severity, opts.Color))
	b.WriteString("[")
	b.WriteString(d.Code.ID())
	b.WriteString("]: ")
	if d.Subject != "" {
		fmt.Fprintf(&b, "%q: ", d.Subject)
	}
	b.WriteString(d.Message)
	b.WriteByte('\n')
	if opts.ShowNotes {
		for _, n := range d.Notes {
			b.WriteString("  note: ")
			b.WriteString(n.Msg)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func severityLabel(sev diag.Severity, useColor bool) string {
	label := strings.ToLower(sev.String())
	if !useColor {
		return label
	}
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgBlue, color.Bold)
	}
	c.EnableColor()
	return c.Sprint(label)
}
