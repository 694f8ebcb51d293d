package driver

import (
	"errors"
	"fmt"

	"github.com/PocketPi/radix/internal/arith"
	"github.com/PocketPi/radix/internal/diag"
	"github.com/PocketPi/radix/internal/literal"
	"github.com/PocketPi/radix/internal/render"
	"github.com/PocketPi/radix/internal/width"
)

// ErrMissingOperand reports an operator given without a second literal.
var ErrMissingOperand = errors.New("operator requires a second operand")

// Request is one numeric conversion as given on the command line.
type Request struct {
	Input    string
	Operator string // empty: no operation
	Operand  string
	Width    width.Width // Unset: infer
}

// HasOperation reports whether the request carries an operator.
func (r Request) HasOperation() bool {
	return r.Operator != ""
}

// Conversion is the result of a successful Convert.
type Conversion struct {
	Value      int64
	Operator   arith.Operator
	Resolution width.Resolution
	Output     render.Output
}

// Convert runs the numeric pipeline. On error nothing is rendered, but
// notices emitted before the failure stay with the reporter.
func Convert(req Request, opts Options) (Conversion, error) {
	log := opts.logger()
	rep := opts.reporter()

	if req.Width.IsSet() && !req.Width.Valid() {
		return Conversion{}, fmt.Errorf("%w %d", width.ErrInvalidWidth, uint8(req.Width))
	}

	phase := opts.Timer.Begin("parse")
	lhs, err := parseLiteral(req.Input, rep)
	if err != nil {
		opts.Timer.End(phase, "failed")
		return Conversion{}, err
	}
	log.Debug("literal parsed", "text", lhs.Text, "radix", lhs.Radix.String(), "value", lhs.Value)

	op := arith.None
	var rhs literal.Literal
	if req.HasOperation() {
		if op, err = arith.ParseOperator(req.Operator); err != nil {
			opts.Timer.End(phase, "failed")
			return Conversion{}, err
		}
		if req.Operand == "" {
			opts.Timer.End(phase, "failed")
			return Conversion{}, fmt.Errorf("%w: %s", ErrMissingOperand, op)
		}
		if rhs, err = parseLiteral(req.Operand, rep); err != nil {
			opts.Timer.End(phase, "failed")
			return Conversion{}, err
		}
		log.Debug("literal parsed", "text", rhs.Text, "radix", rhs.Radix.String(), "value", rhs.Value)
	}
	opts.Timer.End(phase, lhs.Radix.String())

	value := lhs.Value
	if op != arith.None {
		phase = opts.Timer.Begin("evaluate")
		value, err = arith.Apply(lhs.Value, op, rhs.Value)
		if err != nil {
			opts.Timer.End(phase, "failed")
			return Conversion{}, err
		}
		opts.Timer.End(phase, op.String())
		log.Debug("operation applied", "lhs", lhs.Value, "op", op.String(), "rhs", rhs.Value, "result", value)
	}

	phase = opts.Timer.Begin("resolve")
	res := width.Resolve(value, req.Width)
	opts.Timer.End(phase, res.Width.String()+" bits")
	if res.Substituted {
		diag.ReportWarning(rep, diag.WidSubstituted, res.Requested.String(),
			fmt.Sprintf("requested width %d is too small, using %d", res.Requested.Bits(), res.Width.Bits())).
			WithNote(fmt.Sprintf("%d needs at least %d bits", value, res.Inferred.Bits())).
			Emit()
	}
	log.Debug("width resolved", "inferred", res.Inferred.Bits(), "requested", res.Requested.Bits(), "effective", res.Width.Bits())

	phase = opts.Timer.Begin("render")
	out := render.Render(value, res.Width)
	opts.Timer.End(phase, "")

	return Conversion{
		Value:      value,
		Operator:   op,
		Resolution: res,
		Output:     out,
	}, nil
}

func parseLiteral(text string, rep diag.Reporter) (literal.Literal, error) {
	lit, err := literal.Parse(text)
	if err != nil {
		return literal.Literal{}, err
	}
	if lit.FellBack {
		diag.ReportInfo(rep, diag.LitHexFallback, text, "failed parsing in radix 10, trying radix 16").
			WithNote(fmt.Sprintf("read as 0x%s = %d", text, lit.Value)).
			Emit()
	}
	return lit, nil
}
