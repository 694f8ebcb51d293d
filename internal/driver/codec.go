package driver

import (
	"errors"
	"fmt"

	"github.com/PocketPi/radix/internal/codec"
	"github.com/PocketPi/radix/internal/diag"
)

// CodecResult is the outcome of a base64 run. For decode, Failed reports
// input that could not be decoded; that is an outcome, not an error.
type CodecResult struct {
	Mode    codec.Mode
	Input   string
	Encoded string
	Decoded codec.Decoded
	Text    string
	HasText bool
	Failed  bool
}

// RunCodec encodes or decodes input.
func RunCodec(mode codec.Mode, input string, opts Options) (CodecResult, error) {
	log := opts.logger()
	res := CodecResult{Mode: mode, Input: input}

	switch mode {
	case codec.EncodeMode:
		phase := opts.Timer.Begin("encode")
		res.Encoded = codec.Encode(input)
		opts.Timer.End(phase, "")
		log.Debug("encoded", "bytes", len(input), "chars", len(res.Encoded))
		return res, nil

	case codec.DecodeMode:
		phase := opts.Timer.Begin("decode")
		decoded, err := codec.Decode(input)
		if err != nil {
			opts.Timer.End(phase, "failed")
			if !errors.Is(err, codec.ErrDecode) {
				return CodecResult{}, err
			}
			log.Debug("decode failed", "err", err)
			res.Failed = true
			return res, nil
		}
		opts.Timer.End(phase, "")
		res.Decoded = decoded
		if !decoded.ValidUTF8() {
			diag.ReportInfo(opts.reporter(), diag.CodNotUTF8, "", "decoded bytes are not valid UTF-8 text").Emit()
		}
		res.Text, res.HasText = decoded.Text()
		log.Debug("decoded", "bytes", len(decoded.Bytes), "text", res.HasText)
		return res, nil
	}
	return CodecResult{}, fmt.Errorf("base64 mode not selected")
}
