package literal_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/PocketPi/radix/internal/literal"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"10", 10},
		{"-5", -5},
		{"+7", 7},
		{"0010", 10},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, tc := range cases {
		lit, err := literal.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if lit.Value != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, lit.Value, tc.want)
		}
		if lit.Radix != literal.Decimal || lit.FellBack || lit.Prefixed {
			t.Fatalf("Parse(%q) = %+v, want plain decimal", tc.in, lit)
		}
	}
}

func TestParseDecimalRoundTrip(t *testing.T) {
	values := []int64{1, -1, 255, 256, 65535, -65536, 1 << 40, math.MaxInt64 - 1, math.MinInt64 + 1}
	for _, v := range values {
		s := strconv.FormatInt(v, 10)
		lit, err := literal.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if lit.Value != v {
			t.Fatalf("Parse(%q) = %d, want %d", s, lit.Value, v)
		}
	}
}

func TestParsePrefixedHex(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0x1a", 26},
		{"0x1A", 26},
		{"0x0000001a", 26},
		{"0x0", 0},
		{"0x10", 16},
		{"0x7fffffffffffffff", math.MaxInt64},
	}
	for _, tc := range cases {
		lit, err := literal.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if lit.Value != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, lit.Value, tc.want)
		}
		if lit.Radix != literal.Hex || !lit.Prefixed || lit.FellBack {
			t.Fatalf("Parse(%q) = %+v, want prefixed hex", tc.in, lit)
		}
	}
}

func TestParseHexFallback(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1a", 26},
		{"ff", 255},
		{"DEADBEEF", 0xdeadbeef},
		{"0a", 10},
	}
	for _, tc := range cases {
		lit, err := literal.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if lit.Value != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, lit.Value, tc.want)
		}
		if !lit.FellBack || lit.Radix != literal.Hex {
			t.Fatalf("Parse(%q) = %+v, want hex fallback", tc.in, lit)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		in      string
		wantErr error
	}{
		{"", nil},
		{"0x", strconv.ErrSyntax},
		{"0xzz", strconv.ErrSyntax},
		{"0x-1", strconv.ErrSyntax},
		{"0x+1", strconv.ErrSyntax},
		{"zz", strconv.ErrSyntax},
		{"-1a", strconv.ErrSyntax},
		{"+1a", strconv.ErrSyntax},
		{"1.5", strconv.ErrSyntax},
		{"0X1a", strconv.ErrSyntax},
		{"1_000", strconv.ErrSyntax},
		{"9223372036854775808", strconv.ErrRange},
		{"0x8000000000000000", strconv.ErrRange},
		{"0xffffffffffffffff", strconv.ErrRange},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := literal.Parse(tc.in)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tc.in)
			}
			if !errors.Is(err, literal.ErrInvalidInput) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidInput", tc.in, err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want wrapped %v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestParseSurfacesDecimalError(t *testing.T) {
	_, err := literal.Parse("-zz")
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError in chain, got %v", err)
	}
	if numErr.Num != "-zz" {
		t.Fatalf("NumError.Num = %q, want the original text", numErr.Num)
	}
}
