package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// literal parsing
	LitHexFallback Code = 1001

	// width reconciliation
	WidSubstituted Code = 2001

	// base64 codec
	CodNotUTF8 Code = 3001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:    "Unknown error",
		LitHexFallback: "Decimal parse failed, read as hexadecimal",
		WidSubstituted: "Requested width too small, inferred width used",
		CodNotUTF8:     "Decoded bytes are not UTF-8 text",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LIT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("WID%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("COD%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
