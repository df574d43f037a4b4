// File: color_test.go
// Title: Color Value Type Tests
// Description: Tests for Color setters, getters, clamping and IsDark.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test implementation

package colorx

import (
	"testing"
)

func assertRGBA(t *testing.T, c Color, r, g, b int, alpha float64) {
	t.Helper()
	gr, gg, gb, ga := c.RGBA()
	if gr != r || gg != g || gb != b || ga != alpha {
		t.Errorf("RGBA() = (%d, %d, %d, %v), want (%d, %d, %d, %v)", gr, gg, gb, ga, r, g, b, alpha)
	}
}

func TestZeroValueIsOpaqueBlack(t *testing.T) {
	var c Color
	assertRGBA(t, c, 0, 0, 0, 1)

	if c.String() != "#000000" {
		t.Errorf("String() = %s, want #000000", c)
	}
	if !c.Equal(New()) {
		t.Error("zero value should equal New()")
	}
}

func TestSetInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		alpha     float64
		wantValue int
		wantAlpha float64
	}{
		{"in range", 0x336699, 0.4, 0x336699, 0.4},
		{"negative clamps to black", -1, 2, 0, 1},
		{"overflow clamps to white", MaxPacked + 1, -0.5, MaxPacked, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			c.SetInt(tt.value, tt.alpha)
			if c.Int() != tt.wantValue || c.Alpha() != tt.wantAlpha {
				t.Errorf("SetInt(%d, %v) = (%#x, %v), want (%#x, %v)",
					tt.value, tt.alpha, c.Int(), c.Alpha(), tt.wantValue, tt.wantAlpha)
			}
		})
	}
}

func TestSetHex(t *testing.T) {
	var c Color

	c.SetHex("#fff")
	if c.Int() != 16777215 || c.Alpha() != 1.0 {
		t.Errorf("SetHex(#fff) = (%d, %v), want (16777215, 1)", c.Int(), c.Alpha())
	}

	c.SetHex("f00")
	assertRGBA(t, c, 255, 0, 0, 1)

	c.SetInt(0, 0.2)
	c.SetHex("not-a-color")
	assertRGBA(t, c, 255, 255, 255, 1)

	c.SetHex("#33669932")
	assertRGBA(t, c, 0x33, 0x66, 0x99, 0.5)
}

func TestSetRGBAClamps(t *testing.T) {
	var c Color
	c.SetRGBA(300, -20, 128, 0.25)
	assertRGBA(t, c, 255, 0, 128, 0.25)

	if c.Int() != 255*65536+128 {
		t.Errorf("Int() = %d, want %d", c.Int(), 255*65536+128)
	}
}

func TestSetAlphaKeepsRGB(t *testing.T) {
	c := FromRGBA(10, 20, 30, 1)
	c.SetAlpha(0.3)
	assertRGBA(t, c, 10, 20, 30, 0.3)

	c.SetAlpha(7)
	assertRGBA(t, c, 10, 20, 30, 1)
}

func TestSetHSLA(t *testing.T) {
	var c Color
	c.SetHSLA(210, 50, 40, 0.8)
	assertRGBA(t, c, 51, 102, 153, 0.8)

	h, s, l, a := c.HSLA()
	if h != 210 || s != 50 || l != 40 || a != 0.8 {
		t.Errorf("HSLA() = (%d, %d, %d, %v), want (210, 50, 40, 0.8)", h, s, l, a)
	}

	c.SetHSLA(400, 150, -5, 1)
	assertRGBA(t, c, 0, 0, 0, 1)
}

func TestSetHSVResetsAlpha(t *testing.T) {
	c := FromRGBA(1, 2, 3, 0.3)
	c.SetHSV(0, 1, 1)
	assertRGBA(t, c, 255, 0, 0, 1)

	h, s, v := c.HSV()
	if h != 0 || s != 1 || v != 1 {
		t.Errorf("HSV() = (%v, %v, %v), want (0, 1, 1)", h, s, v)
	}
}

func TestSetCMYKResetsAlpha(t *testing.T) {
	c := FromRGBA(1, 2, 3, 0.3)
	c.SetCMYK(0, 100, 100, 0)
	assertRGBA(t, c, 255, 0, 0, 1)

	if got := c.CMYK(); got != (CMYK{C: 0, M: 100, Y: 100, K: 0}) {
		t.Errorf("CMYK() = %+v, want red", got)
	}
}

func TestIsDark(t *testing.T) {
	red := FromRGBA(255, 0, 0, 1)
	black := New()
	white := FromHex("#ffffff")

	tests := []struct {
		name      string
		color     Color
		threshold float64
		want      bool
	}{
		{"lightness equal to scaled threshold is dark", red, 128, true},
		{"lightness above scaled threshold", red, 127, false},
		{"black at zero threshold", black, 0, true},
		{"black at default", black, DefaultDarkThreshold, true},
		{"black at negative threshold", black, -10, true},
		{"white at zero threshold", white, 0, false},
		{"white at default", white, DefaultDarkThreshold, false},
		{"white at 255", white, 255, false},
		{"threshold clamps to 256", white, 1000, true},
		{"dark grey", FromRGBA(100, 100, 100, 1), DefaultDarkThreshold, true},
		{"mid grey", FromRGBA(128, 128, 128, 1), DefaultDarkThreshold, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.IsDark(tt.threshold); got != tt.want {
				t.Errorf("%s.IsDark(%v) = %v, want %v", tt.color, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestColorIsValue(t *testing.T) {
	a := FromRGBA(1, 2, 3, 1)
	b := a
	b.SetRGBA(4, 5, 6, 0.5)

	assertRGBA(t, a, 1, 2, 3, 1)
	assertRGBA(t, b, 4, 5, 6, 0.5)
}

func TestFromConstructors(t *testing.T) {
	if got := FromHex("#336699").String(); got != "#336699" {
		t.Errorf("FromHex().String() = %s", got)
	}
	if got := FromInt(0x336699, 1).String(); got != "#336699" {
		t.Errorf("FromInt().String() = %s", got)
	}
	if got := FromHSLA(210, 50, 40, 1).String(); got != "#336699" {
		t.Errorf("FromHSLA().String() = %s", got)
	}
}
