// File: color.go
// Title: Color Value Type
// Description: Color holds one RGBA color as a packed 24-bit RGB value plus a
//              separate alpha in [0,1]. Setters clamp their input and never
//              fail; getters derive every representation from the stored pair.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

package colorx

import (
	"github.com/msto63/toolbox/utils/mathx"
)

// DefaultDarkThreshold is the IsDark threshold on the 0-256 scale
const DefaultDarkThreshold = 127.0

// Color is a packed RGB color with alpha. The zero value is opaque black.
// A Color is a plain value; copies are independent.
type Color struct {
	packed int
	alpha  float64
	// false for the zero value, which reads as alpha 1
	alphaSet bool
}

// New returns opaque black
func New() Color {
	return Color{alpha: 1, alphaSet: true}
}

// FromInt returns a color from a packed value and alpha
func FromInt(value int, alpha float64) Color {
	var c Color
	c.SetInt(value, alpha)
	return c
}

// FromHex returns a color parsed from a hex notation, opaque white if invalid
func FromHex(hex string) Color {
	var c Color
	c.SetHex(hex)
	return c
}

// FromRGBA returns a color from RGB channels and alpha
func FromRGBA(r, g, b int, alpha float64) Color {
	var c Color
	c.SetRGBA(r, g, b, alpha)
	return c
}

// FromHSLA returns a color from hue in degrees, saturation and lightness in
// percent and alpha
func FromHSLA(h, s, l, alpha float64) Color {
	var c Color
	c.SetHSLA(h, s, l, alpha)
	return c
}

func (c *Color) set(packed int, alpha float64) {
	c.packed = mathx.ClampInt(packed, 0, MaxPacked)
	c.alpha = mathx.ClampFloat(alpha, 0, 1)
	c.alphaSet = true
}

// SetInt sets the packed value, clamped to [0, MaxPacked], and the alpha,
// clamped to [0,1].
func (c *Color) SetInt(value int, alpha float64) {
	c.set(value, alpha)
}

// SetHex sets the color from a hex notation. Invalid notations set opaque
// white.
func (c *Color) SetHex(hex string) {
	value, alpha, _ := ParseHex(hex)
	c.set(value, alpha)
}

// SetRGBA sets the color from channels clamped to [0,255] and alpha
func (c *Color) SetRGBA(r, g, b int, alpha float64) {
	c.set(RGBToInt(r, g, b), alpha)
}

// SetAlpha sets the alpha, clamped to [0,1], and keeps the RGB value
func (c *Color) SetAlpha(alpha float64) {
	c.set(c.packed, alpha)
}

// SetHSLA sets the color from hue in degrees [0,360], saturation and
// lightness in percent [0,100] and alpha.
func (c *Color) SetHSLA(h, s, l, alpha float64) {
	r, g, b := HSLToRGB(h, s, l)
	c.set(RGBToInt(r, g, b), alpha)
}

// SetHSV sets the color from hue, saturation and value in [0,1]. Alpha is
// reset to 1.
func (c *Color) SetHSV(h, s, v float64) {
	r, g, b := HSVToRGB(h, s, v)
	c.set(RGBToInt(r, g, b), 1)
}

// SetCMYK sets the color from CMYK percentages in [0,100]. Alpha is reset
// to 1.
func (c *Color) SetCMYK(cyan, magenta, yellow, key float64) {
	r, g, b := CMYKToRGB(cyan, magenta, yellow, key)
	c.set(RGBToInt(r, g, b), 1)
}

// Int returns the packed 24-bit value
func (c Color) Int() int {
	return c.packed
}

// Alpha returns the alpha in [0,1]
func (c Color) Alpha() float64 {
	if !c.alphaSet {
		return 1
	}
	return c.alpha
}

// RGB returns the red, green and blue channels
func (c Color) RGB() (r, g, b int) {
	return IntToRGB(c.packed)
}

// RGBA returns the channels and the alpha
func (c Color) RGBA() (r, g, b int, alpha float64) {
	r, g, b = c.RGB()
	return r, g, b, c.Alpha()
}

// HSL returns hue in degrees and saturation and lightness in percent
func (c Color) HSL() (h, s, l int) {
	return RGBToHSL(c.RGB())
}

// HSLA returns HSL and the alpha
func (c Color) HSLA() (h, s, l int, alpha float64) {
	h, s, l = c.HSL()
	return h, s, l, c.Alpha()
}

// HSV returns hue, saturation and value in [0,1]
func (c Color) HSV() (h, s, v float64) {
	return RGBToHSV(c.RGB())
}

// CMYK returns the CMYK percentages
func (c Color) CMYK() CMYK {
	return RGBToCMYK(c.RGB())
}

// IsDark reports whether the HSL lightness is at or below threshold. The
// threshold is clamped to [0,256] and scaled to the 0-100 lightness range.
func (c Color) IsDark(threshold float64) bool {
	scaled := mathx.ClampFloat(threshold, 0, 256) * 100 / 256
	_, _, l := c.HSL()
	return float64(l) <= scaled
}

// Equal reports whether both colors have the same RGB value and alpha
func (c Color) Equal(other Color) bool {
	return c.packed == other.packed && c.Alpha() == other.Alpha()
}

// String returns the CSS hex notation #rrggbb
func (c Color) String() string {
	return c.CSSHex()
}
