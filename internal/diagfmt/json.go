package diagfmt

import "github.com/PocketPi/radix/internal/diag"

// DiagnosticJSON is the JSON shape of one diagnostic.
type DiagnosticJSON struct {
	Severity string   `json:"severity"`
	Code     string   `json:"code"`
	Subject  string   `json:"subject,omitempty"`
	Message  string   `json:"message"`
	Notes    []string `json:"notes,omitempty"`
}

// BuildDiagnostics converts the bag for embedding in other JSON payloads.
// A nil bag yields an empty, non-nil slice.
func BuildDiagnostics(bag *diag.Bag, opts JSONOpts) []DiagnosticJSON {
	out := make([]DiagnosticJSON, 0)
	if bag == nil {
		return out
	}
	for _, d := range bag.Items() {
		item := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Subject:  d.Subject,
			Message:  d.Message,
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				item.Notes = append(item.Notes, n.Msg)
			}
		}
		out = append(out, item)
	}
	return out
}
