package codec

import (
	"fmt"
	"strings"
)

// Mode selects the base64 direction. The zero value means the numeric
// converter runs instead.
type Mode uint8

const (
	Off Mode = iota
	EncodeMode
	DecodeMode
)

func (m Mode) String() string {
	switch m {
	case EncodeMode:
		return "encode"
	case DecodeMode:
		return "decode"
	}
	return ""
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encode", "enc", "e":
		*m = EncodeMode
	case "decode", "dec", "d":
		*m = DecodeMode
	default:
		return fmt.Errorf("invalid base64 mode %q (expected encode|decode)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "encode|decode" }
