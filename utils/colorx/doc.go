// File: doc.go
// Title: Package Documentation for colorx
// Description: Package colorx provides an RGBA color value with conversions
//              between hex, RGB(A), HSL(A), HSV and CMYK notations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

// Package colorx provides an RGBA color value with color space conversions.
//
// # Data Model
//
// A Color stores a packed 24-bit RGB integer (r*65536 + g*256 + b) and a
// separate alpha in [0,1]. Every setter clamps its input into range and
// none of them fails. Invalid hex notations and unknown color keywords
// resolve to opaque white.
//
//	c := colorx.FromHex("#369")
//	c.SetAlpha(0.5)
//	fmt.Println(c.CSSRGBA()) // rgba(51,102,153,0.5)
//
// # Conversions
//
//   - Hex: #RGB, #RGBA, #RRGGBB, #RRGGBBA and #RRGGBBAA, '#' optional
//   - HSL: hue in degrees, saturation and lightness in percent
//   - HSV: hue, saturation and value in [0,1]
//   - CMYK: percentages in [0,100]
//
// The pure functions RGBToHSL, HSLToRGB, RGBToHSV, HSVToRGB, RGBToCMYK and
// CMYKToRGB are exported for callers that do not need a Color value.
// HSL to RGB floors the channels while HSV and CMYK to RGB round them.
//
// # Hex Alpha
//
// Alpha digits in a hex notation are a percentage, not a byte: "#ff000032"
// is red with alpha 0.5 (0x32 = 50) and values above 0x64 are clamped to
// opaque. HexAlpha writes the same form, so hex output parses back to the
// same color.
//
// # Darkness
//
// IsDark compares the HSL lightness to a threshold on a 0-256 scale. A color
// is dark when its lightness is at or below threshold*100/256.
//
// # Interop
//
// NRGBA and FromStd convert to and from image/color, Colorful, FromColorful
// and Mix use github.com/lucasb-eyer/go-colorful, and Lipgloss and Swatch
// produce terminal styling through github.com/charmbracelet/lipgloss. Color
// keywords come from golang.org/x/image/colornames.
//
// # Thread Safety
//
// Color is a value type owned by its caller. The package functions are pure
// and safe for concurrent use.
package colorx
