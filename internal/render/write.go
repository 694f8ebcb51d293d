package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Style decides how labels are coloured.
type Style struct {
	Color bool
}

func (s Style) label(text string) string {
	if !s.Color {
		return text
	}
	c := color.New(color.FgCyan, color.Bold)
	c.EnableColor()
	return c.Sprint(text)
}

// Line is one labelled line of pretty output.
type Line struct {
	Label string
	Value string
}

// Lines returns out as the dec/hex/bin lines, in print order.
func (out Output) Lines() []Line {
	return []Line{
		{Label: "dec", Value: out.Decimal},
		{Label: "hex", Value: out.Hex},
		{Label: "bin", Value: out.Binary},
	}
}

// WritePretty writes "label: value" lines.
func WritePretty(w io.Writer, lines []Line, style Style) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", style.label(l.Label+":"), l.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes payload as indented JSON followed by a newline.
func WriteJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
