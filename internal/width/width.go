// Package width models the bit widths used to pad hexadecimal and binary
// output, infers the smallest one a value needs, and reconciles that with a
// width the user asked for.
package width

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrInvalidWidth reports a width outside 2, 4, 8, 16, 32, 64.
var ErrInvalidWidth = errors.New("invalid width")

// Width is a display width in bits. The zero value means "not requested".
type Width uint8

const (
	Unset Width = 0
	W2    Width = 2
	W4    Width = 4
	W8    Width = 8
	W16   Width = 16
	W32   Width = 32
	W64   Width = 64
)

// All lists every valid width in ascending order.
var All = [...]Width{W2, W4, W8, W16, W32, W64}

// FromBits validates n as a width.
func FromBits(n int) (Width, error) {
	bits, err := safecast.Conv[uint8](n)
	if err != nil {
		return Unset, fmt.Errorf("%w %d: %w", ErrInvalidWidth, n, err)
	}
	w := Width(bits)
	if !w.Valid() {
		return Unset, fmt.Errorf("%w %d (expected one of %s)", ErrInvalidWidth, n, choices())
	}
	return w, nil
}

// Parse validates a decimal width string such as "16".
func Parse(s string) (Width, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Unset, fmt.Errorf("%w %q (expected one of %s)", ErrInvalidWidth, s, choices())
	}
	return FromBits(n)
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	for _, c := range All {
		if w == c {
			return true
		}
	}
	return false
}

// IsSet reports whether w was requested.
func (w Width) IsSet() bool { return w != Unset }

// Bits returns w as an int.
func (w Width) Bits() int { return int(w) }

// HexDigits is the number of hexadecimal digits needed to show w bits.
func (w Width) HexDigits() int { return (int(w) + 3) / 4 }

func (w Width) String() string {
	if w == Unset {
		return ""
	}
	return strconv.Itoa(int(w))
}

// Set implements pflag.Value.
func (w *Width) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Type implements pflag.Value.
func (w *Width) Type() string { return "bits" }

func choices() string {
	parts := make([]string, len(All))
	for i, w := range All {
		parts[i] = w.String()
	}
	return strings.Join(parts, ", ")
}
