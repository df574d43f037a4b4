// File: convert.go
// Title: Color Space Conversions
// Description: Pure conversions between packed 24-bit RGB, HSL, HSV and CMYK.
//              Inputs are clamped into their domains, no conversion fails.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

package colorx

import (
	"math"

	"github.com/msto63/toolbox/utils/mathx"
)

// MaxPacked is the largest packed 24-bit color value (white)
const MaxPacked = 0xFFFFFF

// CMYK holds cyan, magenta, yellow and key as percentages in [0,100]
type CMYK struct {
	C, M, Y, K float64
}

// RGBToInt packs channels as r*65536 + g*256 + b. Channels are clamped to [0,255].
func RGBToInt(r, g, b int) int {
	r = mathx.ClampInt(r, 0, 255)
	g = mathx.ClampInt(g, 0, 255)
	b = mathx.ClampInt(b, 0, 255)
	return r*65536 + g*256 + b
}

// IntToRGB unpacks a 24-bit color. The value is clamped to [0, MaxPacked].
func IntToRGB(value int) (r, g, b int) {
	value = mathx.ClampInt(value, 0, MaxPacked)
	return value >> 16 & 0xFF, value >> 8 & 0xFF, value & 0xFF
}

// HSLToRGB converts hue in degrees [0,360] and saturation and lightness in
// percent [0,100] to RGB channels. Channels are floored, not rounded.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	h = mathx.ClampFloat(h, 0, 360)
	s = mathx.ClampFloat(s, 0, 100) / 100
	l = mathx.ClampFloat(l, 0, 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return floorChannel(rf + m), floorChannel(gf + m), floorChannel(bf + m)
}

// RGBToHSL converts RGB channels to hue in degrees and saturation and
// lightness in percent, each rounded half away from zero. A red dominant
// color with b > g yields a hue in (300,360].
func RGBToHSL(r, g, b int) (h, s, l int) {
	rf, gf, bf := unit(r), unit(g), unit(b)
	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))

	lf := (hi + lo) / 2
	if hi == lo {
		return 0, 0, int(math.Round(lf * 100))
	}

	d := hi - lo
	sf := d / (1 - math.Abs(2*lf-1))

	var hf float64
	switch hi {
	case rf:
		hf = 60 * math.Mod((gf-bf)/d, 6)
		if bf > gf {
			hf += 360
		}
	case gf:
		hf = 60 * ((bf-rf)/d + 2)
	default:
		hf = 60 * ((rf-gf)/d + 4)
	}

	return int(math.Round(hf)), int(math.Round(sf * 100)), int(math.Round(lf * 100))
}

// HSVToRGB converts hue, saturation and value, all in [0,1], to RGB
// channels rounded to the nearest integer.
func HSVToRGB(h, s, v float64) (r, g, b int) {
	h = mathx.ClampFloat(h, 0, 1)
	s = mathx.ClampFloat(s, 0, 1)
	v = mathx.ClampFloat(v, 0, 1)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}

	return roundChannel(rf), roundChannel(gf), roundChannel(bf)
}

// RGBToHSV converts RGB channels to hue, saturation and value in [0,1].
// Achromatic colors have hue 0.
func RGBToHSV(r, g, b int) (h, s, v float64) {
	rf, gf, bf := unit(r), unit(g), unit(b)
	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	d := hi - lo

	v = hi
	if hi != 0 {
		s = d / hi
	}
	if hi == lo {
		return 0, s, v
	}

	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return h / 6, s, v
}

// CMYKToRGB converts percentages in [0,100] to RGB channels, rounded to the
// nearest integer.
func CMYKToRGB(c, m, y, k float64) (r, g, b int) {
	c = mathx.ClampFloat(c, 0, 100) / 100
	m = mathx.ClampFloat(m, 0, 100) / 100
	y = mathx.ClampFloat(y, 0, 100) / 100
	k = mathx.ClampFloat(k, 0, 100) / 100

	return roundChannel((1 - c) * (1 - k)),
		roundChannel((1 - m) * (1 - k)),
		roundChannel((1 - y) * (1 - k))
}

// RGBToCMYK converts RGB channels to CMYK percentages. K is the smallest of
// the raw C, M and Y values and is subtracted from each of them.
func RGBToCMYK(r, g, b int) CMYK {
	r = mathx.ClampInt(r, 0, 255)
	g = mathx.ClampInt(g, 0, 255)
	b = mathx.ClampInt(b, 0, 255)

	c := float64(255-r) / 255 * 100
	m := float64(255-g) / 255 * 100
	y := float64(255-b) / 255 * 100
	k := math.Min(c, math.Min(m, y))

	return CMYK{C: c - k, M: m - k, Y: y - k, K: k}
}

func unit(channel int) float64 {
	return float64(mathx.ClampInt(channel, 0, 255)) / 255
}

func floorChannel(v float64) int {
	return mathx.ClampInt(int(math.Floor(v*255)), 0, 255)
}

func roundChannel(v float64) int {
	return mathx.ClampInt(int(math.Round(v*255)), 0, 255)
}
