// Package codec wraps the standard base64 alphabet for the converter's
// encode/decode mode and derives the preview lines shown after decoding.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrDecode reports input that is not valid padded standard base64.
var ErrDecode = errors.New("cannot decode input")

// Encode returns the padded standard base64 form of text.
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode parses padded standard base64.
func Decode(text string) (Decoded, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Decoded{Bytes: raw}, nil
}

// Decoded is the result of a successful Decode.
type Decoded struct {
	Bytes []byte
}

// ValidUTF8 reports whether the bytes form valid UTF-8 text.
func (d Decoded) ValidUTF8() bool {
	return utf8.Valid(d.Bytes)
}

// Text returns the bytes as a string when there is at least one byte and
// every byte is an ASCII letter or digit; otherwise ok is false.
func (d Decoded) Text() (text string, ok bool) {
	if len(d.Bytes) == 0 || !d.ValidUTF8() {
		return "", false
	}
	for _, b := range d.Bytes {
		if !isASCIIAlnum(b) {
			return "", false
		}
	}
	return string(d.Bytes), true
}

// Hex renders the bytes as space separated two-digit lower-case hex.
func (d Decoded) Hex() string {
	var b strings.Builder
	b.Grow(len(d.Bytes) * 3)
	for i, c := range d.Bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

func isASCIIAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
