// File: adapters.go
// Title: Color Adapters
// Description: Conversions to and from image/color, go-colorful and lipgloss,
//              plus perceptual mixing in CIE L*a*b*.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-01
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: nil image/color values convert to opaque white

package colorx

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/msto63/toolbox/utils/mathx"
)

// NRGBA returns the color as a non-premultiplied image/color value with
// alpha scaled to 0-255.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
		A: uint8(math.Round(c.Alpha() * 255)),
	}
}

// FromStd converts any image/color value. A nil value yields opaque white,
// the same fallback as invalid hex or name input.
func FromStd(std color.Color) Color {
	if std == nil {
		return FromInt(MaxPacked, 1)
	}
	n := color.NRGBAModel.Convert(std).(color.NRGBA)
	return FromRGBA(int(n.R), int(n.G), int(n.B), float64(n.A)/255)
}

// Colorful returns the color as a go-colorful value. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromColorful converts a go-colorful value, clamping out of gamut colors,
// into an opaque color.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return FromRGBA(int(r), int(g), int(b), 1)
}

// Mix blends c towards other in CIE L*a*b*. t is clamped to [0,1]; 0 yields
// c and 1 yields other. Alpha is interpolated linearly.
func (c Color) Mix(other Color, t float64) Color {
	t = mathx.ClampFloat(t, 0, 1)
	mixed := FromColorful(c.Colorful().BlendLab(other.Colorful(), t))
	mixed.SetAlpha(c.Alpha() + (other.Alpha()-c.Alpha())*t)
	return mixed
}

// Lipgloss returns the color for terminal styling. Alpha is dropped.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.CSSHex())
}

// Swatch renders text on the color as background with a black or white
// foreground picked by IsDark with the default threshold.
func (c Color) Swatch(text string) string {
	fg := lipgloss.Color("#000000")
	if c.IsDark(DefaultDarkThreshold) {
		fg = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(fg).
		Render(text)
}
