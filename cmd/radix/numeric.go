package main

import (
	"github.com/spf13/cobra"

	"github.com/PocketPi/radix/internal/diag"
	"github.com/PocketPi/radix/internal/diagfmt"
	"github.com/PocketPi/radix/internal/driver"
	"github.com/PocketPi/radix/internal/render"
)

type conversionPayload struct {
	Input          string                   `json:"input"`
	Operator       string                   `json:"operator,omitempty"`
	Operand        string                   `json:"operand,omitempty"`
	Value          int64                    `json:"value"`
	Width          int                      `json:"width"`
	InferredWidth  int                      `json:"inferred_width"`
	RequestedWidth int                      `json:"requested_width,omitempty"`
	Dec            string                   `json:"dec"`
	Hex            string                   `json:"hex"`
	Bin            string                   `json:"bin"`
	Notices        []diagfmt.DiagnosticJSON `json:"notices"`
}

func runNumeric(cmd *cobra.Command, s settings, dopts driver.Options, bag *diag.Bag, req driver.Request) error {
	conv, err := driver.Convert(req, dopts)
	if err != nil {
		// notices raised before the failure still explain it
		if perr := printNotices(cmd, s, bag); perr != nil {
			return perr
		}
		return err
	}

	if s.format == "json" {
		payload := conversionPayload{
			Input:          req.Input,
			Operator:       req.Operator,
			Operand:        req.Operand,
			Value:          conv.Value,
			Width:          conv.Resolution.Width.Bits(),
			InferredWidth:  conv.Resolution.Inferred.Bits(),
			RequestedWidth: conv.Resolution.Requested.Bits(),
			Dec:            conv.Output.Decimal,
			Hex:            conv.Output.Hex,
			Bin:            conv.Output.Binary,
			Notices:        noticesJSON(bag),
		}
		return render.WriteJSON(cmd.OutOrStdout(), payload)
	}

	if err := printNotices(cmd, s, bag); err != nil {
		return err
	}
	style := render.Style{Color: shouldColor(s.color, cmd.OutOrStdout())}
	return render.WritePretty(cmd.OutOrStdout(), conv.Output.Lines(), style)
}

// printNotices writes collected notices, with their notes, to stderr.
func printNotices(cmd *cobra.Command, s settings, bag *diag.Bag) error {
	if bag.Len() == 0 {
		return nil
	}
	return diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{
		Color:     shouldColor(s.color, cmd.ErrOrStderr()),
		ShowNotes: true,
		Prefix:    "radix",
	})
}

func noticesJSON(bag *diag.Bag) []diagfmt.DiagnosticJSON {
	return diagfmt.BuildDiagnostics(bag, diagfmt.JSONOpts{IncludeNotes: true})
}
