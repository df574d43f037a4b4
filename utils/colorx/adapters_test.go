// File: adapters_test.go
// Title: Color Adapter Tests
// Description: Tests for image/color, go-colorful and lipgloss adapters, and
//              cross-checks of the HSL and HSV math against go-colorful.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-01
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test implementation
// - 2025-03-09 v0.1.1: nil image/color input

package colorx

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func TestNRGBA(t *testing.T) {
	got := FromRGBA(10, 20, 30, 0.5).NRGBA()
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	if got != want {
		t.Errorf("NRGBA() = %+v, want %+v", got, want)
	}
}

func TestFromStd(t *testing.T) {
	tests := []struct {
		name      string
		std       color.Color
		wantHex   string
		wantAlpha float64
	}{
		{"opaque nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 255}, "#0a141e", 1},
		{"black", color.Black, "#000000", 1},
		{"white", color.White, "#ffffff", 1},
		{"transparent", color.Transparent, "#000000", 0},
		{"gray16", color.Gray16{Y: 0xFFFF}, "#ffffff", 1},
		{"nil", nil, "#ffffff", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromStd(tt.std)
			if c.CSSHex() != tt.wantHex || c.Alpha() != tt.wantAlpha {
				t.Errorf("FromStd() = (%s, %v), want (%s, %v)", c, c.Alpha(), tt.wantHex, tt.wantAlpha)
			}
		})
	}
}

func TestStdRoundTrip(t *testing.T) {
	c := FromRGBA(200, 100, 50, 1)
	if back := FromStd(c.NRGBA()); !back.Equal(c) {
		t.Errorf("FromStd(NRGBA()) = %s, want %s", back, c)
	}
}

func TestColorfulHexAgrees(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#336699", "#ff0080", "#0a141e", "#c0ffee"} {
		c := FromHex(hex)
		if got := c.Colorful().Hex(); got != hex {
			t.Errorf("Colorful().Hex() = %s, want %s", got, hex)
		}

		cc, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("colorful.Hex(%s) error = %v", hex, err)
		}
		if got := FromColorful(cc); !got.Equal(c) {
			t.Errorf("FromColorful(%s) = %s", hex, got)
		}
	}
}

func TestFromColorfulClamps(t *testing.T) {
	c := FromColorful(colorful.Color{R: 1.2, G: -0.1, B: 0.5})
	assertRGBA(t, c, 255, 0, 128, 1)
}

func TestHSLAgreesWithColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				h, s, l := RGBToHSL(r, g, b)
				ch, cs, cl := FromRGBA(r, g, b, 1).Colorful().Hsl()

				if d := hueDistance(float64(h), ch, 360); d > 1 {
					t.Errorf("rgb(%d,%d,%d): hue %d, colorful %.3f", r, g, b, h, ch)
				}
				if math.Abs(float64(s)-cs*100) > 1 || math.Abs(float64(l)-cl*100) > 1 {
					t.Errorf("rgb(%d,%d,%d): s=%d l=%d, colorful s=%.3f l=%.3f", r, g, b, s, l, cs*100, cl*100)
				}
			}
		}
	}
}

func TestHSVAgreesWithColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				h, s, v := RGBToHSV(r, g, b)
				ch, cs, cv := FromRGBA(r, g, b, 1).Colorful().Hsv()

				if d := hueDistance(h*360, ch, 360); d > 1e-6 {
					t.Errorf("rgb(%d,%d,%d): hue %.6f, colorful %.6f", r, g, b, h*360, ch)
				}
				if math.Abs(s-cs) > 1e-9 || math.Abs(v-cv) > 1e-9 {
					t.Errorf("rgb(%d,%d,%d): s=%v v=%v, colorful s=%v v=%v", r, g, b, s, v, cs, cv)
				}
			}
		}
	}
}

func TestMix(t *testing.T) {
	red := FromRGBA(255, 0, 0, 1)
	blue := FromRGBA(0, 0, 255, 1)

	if got := red.Mix(blue, 0); !got.Equal(red) {
		t.Errorf("Mix(t=0) = %s, want red", got)
	}
	if got := red.Mix(blue, 1); !got.Equal(blue) {
		t.Errorf("Mix(t=1) = %s, want blue", got)
	}
	if got := red.Mix(blue, 5); !got.Equal(blue) {
		t.Errorf("Mix(t=5) should clamp to blue, got %s", got)
	}

	grey := FromRGBA(0, 0, 0, 0).Mix(FromRGBA(255, 255, 255, 1), 0.5)
	r, g, b, a := grey.RGBA()
	if r != g || g != b || r < 110 || r > 130 {
		t.Errorf("black/white mix = rgb(%d,%d,%d), want a neutral mid grey", r, g, b)
	}
	if a != 0.5 {
		t.Errorf("mixed alpha = %v, want 0.5", a)
	}
}

func TestLipgloss(t *testing.T) {
	c := FromHex("#336699")
	if got := c.Lipgloss(); got != lipgloss.Color("#336699") {
		t.Errorf("Lipgloss() = %v, want #336699", got)
	}
}

func TestSwatch(t *testing.T) {
	for _, c := range []Color{New(), FromHex("#ffffff"), FromHex("#336699")} {
		if out := c.Swatch("sample"); !strings.Contains(out, "sample") {
			t.Errorf("Swatch() for %s lost the text: %q", c, out)
		}
	}
}
