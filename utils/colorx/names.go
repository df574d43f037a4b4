// File: names.go
// Title: Named Colors
// Description: Resolves CSS/SVG color keywords through x/image/colornames and
//              parses strings that are either a keyword or a hex notation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

package colorx

import (
	"strings"

	"golang.org/x/image/colornames"
)

// LookupName returns the opaque color for a CSS/SVG keyword such as
// "darkorchid". Matching ignores case and surrounding whitespace.
func LookupName(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FromInt(MaxPacked, 1), false
	}
	return FromRGBA(int(rgba.R), int(rgba.G), int(rgba.B), 1), true
}

// SetName sets the color from a CSS/SVG keyword. Unknown keywords set opaque
// white, the same fallback as SetHex.
func (c *Color) SetName(name string) {
	named, _ := LookupName(name)
	*c = named
}

// Parse accepts a color keyword or a hex notation, keywords are tried first.
// Input matching neither yields opaque white and ok == false.
func Parse(s string) (Color, bool) {
	if named, ok := LookupName(s); ok {
		return named, true
	}
	value, alpha, ok := ParseHex(s)
	return FromInt(value, alpha), ok
}

// Names returns the known color keywords
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
