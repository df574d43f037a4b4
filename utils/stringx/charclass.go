// File: charclass.go
// Title: Character Classes for Secure String Generation
// Description: Defines the character class bit set used to describe the
//              composition of generated strings, with parsing and text
//              marshaling so classes can be written in configuration files.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/toolbox/core/errors"
)

// CharClass is a set of character classes
type CharClass uint8

const (
	// ClassLowercase is a-z
	ClassLowercase CharClass = 1 << iota
	// ClassUppercase is A-Z
	ClassUppercase
	// ClassDigits is 0-9
	ClassDigits
	// ClassSpecial is the caller supplied set of non-alphanumeric characters
	ClassSpecial

	// ClassNone is the empty set
	ClassNone CharClass = 0
	// ClassAll enables every class
	ClassAll = ClassLowercase | ClassUppercase | ClassDigits | ClassSpecial
)

var classNames = []struct {
	class CharClass
	name  string
}{
	{ClassLowercase, "lower"},
	{ClassUppercase, "upper"},
	{ClassDigits, "digits"},
	{ClassSpecial, "special"},
}

var classAliases = map[string]CharClass{
	"lower":     ClassLowercase,
	"lowercase": ClassLowercase,
	"upper":     ClassUppercase,
	"uppercase": ClassUppercase,
	"digit":     ClassDigits,
	"digits":    ClassDigits,
	"special":   ClassSpecial,
	"symbols":   ClassSpecial,
	"all":       ClassAll,
	"none":      ClassNone,
}

// Has reports whether every class in other is enabled in c. The empty set is
// never reported as present.
func (c CharClass) Has(other CharClass) bool {
	return other != ClassNone && c&other == other
}

// Classes returns the single classes contained in c in canonical order
func (c CharClass) Classes() []CharClass {
	var result []CharClass
	for _, cn := range classNames {
		if c&cn.class != 0 {
			result = append(result, cn.class)
		}
	}
	return result
}

// String returns a comma separated list such as "lower,digits", or "none"
func (c CharClass) String() string {
	var parts []string
	for _, cn := range classNames {
		if c&cn.class != 0 {
			parts = append(parts, cn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// MarshalText implements encoding.TextMarshaler
func (c CharClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CharClass) UnmarshalText(text []byte) error {
	parsed, err := ParseCharClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCharClass parses a list of class names separated by commas or '|'.
// Names are case-insensitive; "all" and "none" are accepted, and an empty
// string yields ClassNone.
func ParseCharClass(s string) (CharClass, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|'
	})

	var result CharClass
	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "" {
			continue
		}
		class, ok := classAliases[name]
		if !ok {
			return ClassNone, errors.InvalidFormat(errors.ModuleStringx, s,
				"list of lower, upper, digits, special, all or none")
		}
		result |= class
	}
	return result, nil
}
