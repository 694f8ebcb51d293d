package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PocketPi/radix/internal/codec"
	"github.com/PocketPi/radix/internal/diag"
	"github.com/PocketPi/radix/internal/diagfmt"
	"github.com/PocketPi/radix/internal/driver"
	"github.com/PocketPi/radix/internal/render"
)

const cannotDecodeMessage = "cannot decode input"

type codecPayload struct {
	Mode    string                   `json:"mode"`
	Input   string                   `json:"input"`
	Output  string                   `json:"output,omitempty"`
	OK      bool                     `json:"ok"`
	Text    *string                  `json:"text,omitempty"`
	Hex     string                   `json:"hex,omitempty"`
	Notices []diagfmt.DiagnosticJSON `json:"notices"`
}

func runBase64(cmd *cobra.Command, s settings, dopts driver.Options, bag *diag.Bag, mode codec.Mode, input string) error {
	res, err := driver.RunCodec(mode, input, dopts)
	if err != nil {
		return err
	}

	if s.format == "json" {
		payload := codecPayload{
			Mode:    mode.String(),
			Input:   input,
			OK:      !res.Failed,
			Notices: noticesJSON(bag),
		}
		switch {
		case mode == codec.EncodeMode:
			payload.Output = res.Encoded
		case !res.Failed:
			payload.Hex = res.Decoded.Hex()
			if res.HasText {
				payload.Text = &res.Text
			}
		}
		return render.WriteJSON(cmd.OutOrStdout(), payload)
	}

	if err := printNotices(cmd, s, bag); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Failed {
		_, err := fmt.Fprintln(out, cannotDecodeMessage)
		return err
	}
	style := render.Style{Color: shouldColor(s.color, out)}
	return render.WritePretty(out, codecLines(res), style)
}

func codecLines(res driver.CodecResult) []render.Line {
	if res.Mode == codec.EncodeMode {
		return []render.Line{{Label: "base64", Value: res.Encoded}}
	}
	lines := make([]render.Line, 0, 2)
	if res.HasText {
		lines = append(lines, render.Line{Label: "text", Value: res.Text})
	}
	return append(lines, render.Line{Label: "hex", Value: res.Decoded.Hex()})
}
