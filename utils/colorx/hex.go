// File: hex.go
// Title: Hexadecimal Color Notation
// Description: Parsing and formatting of #RGB, #RGBA, #RRGGBB, #RRGGBBA and
//              #RRGGBBAA notations. The alpha digits are read as a percentage
//              (0x64 = 100 = opaque), not as a 0-255 byte.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-01
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Strip every leading '#'

package colorx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/msto63/toolbox/utils/mathx"
)

// DefaultHex is the color used for input that is not a valid hex notation
const DefaultHex = "ffffff"

// SanitizeHex normalizes a hex color notation to six lowercase RGB digits
// followed by two alpha digits when the input carries alpha. Surrounding
// whitespace and all leading '#' are removed, short forms are expanded by
// doubling each digit and a single alpha digit is doubled. Invalid input
// yields DefaultHex and ok == false.
func SanitizeHex(hex string) (digits string, ok bool) {
	hex = strings.TrimLeft(strings.TrimSpace(hex), "#")
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return DefaultHex, false
		}
	}
	hex = strings.ToLower(hex)

	switch len(hex) {
	case 3, 4:
		return double(hex), true
	case 6:
		return hex, true
	case 7:
		return hex + hex[6:], true
	case 8:
		return hex, true
	default:
		return DefaultHex, false
	}
}

// ParseHex parses a hex color notation into a packed value and alpha.
// Invalid input resolves to opaque white with ok == false.
func ParseHex(hex string) (value int, alpha float64, ok bool) {
	digits, ok := SanitizeHex(hex)

	rgb, _ := strconv.ParseUint(digits[:6], 16, 32)
	alpha = 1
	if len(digits) == 8 {
		a, _ := strconv.ParseUint(digits[6:], 16, 32)
		alpha = float64(mathx.ClampInt(int(a), 0, 100)) / 100
	}
	return int(rgb), alpha, ok
}

// HexString returns the six lowercase RGB digits, followed by HexAlpha when
// withAlpha is set.
func (c Color) HexString(withAlpha bool) string {
	s := fmt.Sprintf("%06x", c.Int())
	if withAlpha {
		s += c.HexAlpha()
	}
	return s
}

// HexAlpha returns the alpha as two hex digits of its percentage, so 0.5
// yields "32" and 1 yields "64". ParseHex reads this form back unchanged.
func (c Color) HexAlpha() string {
	return fmt.Sprintf("%02x", int(math.Round(c.Alpha()*100)))
}

// CSSHex returns the color as #rrggbb
func (c Color) CSSHex() string {
	return "#" + c.HexString(false)
}

// CSSHexAlpha returns the color as #rrggbbaa with percentage alpha digits
func (c Color) CSSHexAlpha() string {
	return "#" + c.HexString(true)
}

// CSSRGBA returns the color as rgba(r,g,b,a) with the shortest exact alpha
func (c Color) CSSRGBA() string {
	r, g, b := c.RGB()
	return "rgba(" + strconv.Itoa(r) + "," + strconv.Itoa(g) + "," + strconv.Itoa(b) + "," +
		strconv.FormatFloat(c.Alpha(), 'f', -1, 64) + ")"
}

func isHexDigit(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func double(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		sb.WriteByte(s[i])
		sb.WriteByte(s[i])
	}
	return sb.String()
}
