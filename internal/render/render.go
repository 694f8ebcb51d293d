// Package render turns a value and its effective width into the three
// display strings the converter prints, and writes them as text or JSON.
package render

import (
	"fmt"
	"strconv"

	"github.com/PocketPi/radix/internal/width"
)

// Output holds the three renderings of one value.
type Output struct {
	Decimal string
	Hex     string
	Binary  string
}

// Render formats v. Hex is padded to w.HexDigits() digits and binary to
// w.Bits() digits; negative values show their 64-bit two's-complement
// pattern, so padding never truncates.
func Render(v int64, w width.Width) Output {
	pattern := uint64(v)
	return Output{
		Decimal: strconv.FormatInt(v, 10),
		Hex:     fmt.Sprintf("0x%0*x", w.HexDigits(), pattern),
		Binary:  fmt.Sprintf("0b%0*b", w.Bits(), pattern),
	}
}
