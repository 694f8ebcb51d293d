package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HexPrefix marks an explicitly hexadecimal literal. Only the lower-case
// form is recognised.
const HexPrefix = "0x"

// ErrInvalidInput reports a literal that is neither decimal nor hexadecimal,
// or that does not fit in int64.
var ErrInvalidInput = errors.New("invalid input")

// Radix is the base a literal was finally read in.
type Radix uint8

const (
	// Decimal is base 10.
	Decimal Radix = 10
	// Hex is base 16.
	Hex Radix = 16
)

func (r Radix) String() string {
	switch r {
	case Decimal:
		return "dec"
	case Hex:
		return "hex"
	}
	return "radix(" + strconv.Itoa(int(r)) + ")"
}

// Literal is a parsed numeric literal.
type Literal struct {
	Text     string
	Value    int64
	Radix    Radix
	Prefixed bool // text carried the 0x prefix
	FellBack bool // base-10 failed and the text was reread as base-16
}

// Parse reads text as a 0x-prefixed hexadecimal or a decimal literal, falling
// back to unprefixed hexadecimal when the decimal reading fails.
func Parse(text string) (Literal, error) {
	if text == "" {
		return Literal{}, fmt.Errorf("%w: empty literal", ErrInvalidInput)
	}

	if digits, ok := strings.CutPrefix(text, HexPrefix); ok {
		v, err := parseHex(digits)
		if err != nil {
			return Literal{}, fmt.Errorf("%w %q: %w", ErrInvalidInput, text, err)
		}
		return Literal{Text: text, Value: v, Radix: Hex, Prefixed: true}, nil
	}

	v, decErr := strconv.ParseInt(text, 10, 64)
	if decErr == nil {
		return Literal{Text: text, Value: v, Radix: Decimal}, nil
	}

	v, hexErr := parseHex(text)
	if hexErr != nil {
		// the decimal reading is what the user most likely meant
		return Literal{}, fmt.Errorf("%w %q: %w", ErrInvalidInput, text, decErr)
	}
	return Literal{Text: text, Value: v, Radix: Hex, FellBack: true}, nil
}

// parseHex reads unsigned base-16 digits into an int64. strconv accepts a
// leading sign for any base, so that is rejected up front.
func parseHex(digits string) (int64, error) {
	if digits == "" {
		return 0, &strconv.NumError{Func: "ParseInt", Num: digits, Err: strconv.ErrSyntax}
	}
	if !isHexDigit(digits[0]) {
		return 0, &strconv.NumError{Func: "ParseInt", Num: digits, Err: strconv.ErrSyntax}
	}
	return strconv.ParseInt(digits, 16, 64)
}

func isHexDigit(ch byte) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'f':
		return true
	case ch >= 'A' && ch <= 'F':
		return true
	}
	return false
}
