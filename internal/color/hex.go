package color

import (
	"fmt"
	"strings"
)

// HexDigits is the length of a complete Hex value.
const HexDigits = 6

// Hex is a bare, uppercase hex color of up to six digits. Only a complete
// value denotes a color; shorter values are text still being typed.
type Hex string

// NewHex formats c as a complete Hex value.
func NewHex(c Color) Hex {
	return Hex(fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B))
}

// FilterHex keeps only hex digits from s, truncates the result to six
// characters and uppercases it.
func FilterHex(s string) Hex {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == HexDigits {
			break
		}
		if isHexDigit(r) {
			b.WriteRune(r)
		}
	}
	return Hex(strings.ToUpper(b.String()))
}

// Complete reports whether h has exactly six digits.
func (h Hex) Complete() bool {
	return len(h) == HexDigits
}

// Color parses a complete Hex value.
func (h Hex) Color() (Color, error) {
	if !h.Complete() {
		return Color{}, fmt.Errorf("incomplete hex color %q", string(h))
	}
	return ParseHex(string(h))
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
