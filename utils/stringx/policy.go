// File: policy.go
// Title: String Generation Policies
// Description: Named, serializable descriptions of a generation request
//              (length, classes, special characters and minimums) with
//              validation and built-in password and URL token policies.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package stringx

import (
	"github.com/msto63/toolbox/core/errors"
)

const (
	// DefaultPasswordLength is the length of PasswordPolicy in the registry
	DefaultPasswordLength = 16
	// DefaultTokenLength is the length of URLTokenPolicy in the registry
	DefaultTokenLength = 32
)

// Minimums holds the per-class minimum counts of a policy
type Minimums struct {
	Lower   int `toml:"lower" yaml:"lower"`
	Upper   int `toml:"upper" yaml:"upper"`
	Digits  int `toml:"digits" yaml:"digits"`
	Special int `toml:"special" yaml:"special"`
}

// Map returns the minimums keyed by class, leaving out zero entries
func (m Minimums) Map() map[CharClass]int {
	result := make(map[CharClass]int, 4)
	for class, count := range map[CharClass]int{
		ClassLowercase: m.Lower,
		ClassUppercase: m.Upper,
		ClassDigits:    m.Digits,
		ClassSpecial:   m.Special,
	} {
		if count != 0 {
			result[class] = count
		}
	}
	return result
}

// Policy describes a generation request. Name is filled in from the key a
// policy is registered under.
type Policy struct {
	Name         string    `toml:"-" yaml:"-"`
	Length       int       `toml:"length" yaml:"length"`
	Classes      CharClass `toml:"classes" yaml:"classes"`
	SpecialChars string    `toml:"special_chars" yaml:"special_chars"`
	Minimums     Minimums  `toml:"minimums" yaml:"minimums"`
}

// PasswordPolicy requires one character of every class and uses the OWASP
// special character set
func PasswordPolicy(length int) Policy {
	return Policy{
		Name:         "password",
		Length:       length,
		Classes:      ClassAll,
		SpecialChars: PasswordSpecialChars,
		Minimums:     Minimums{Lower: 1, Upper: 1, Digits: 1, Special: 1},
	}
}

// URLTokenPolicy draws from every class with the URL safe punctuation set
func URLTokenPolicy(length int) Policy {
	return Policy{
		Name:         "url_token",
		Length:       length,
		Classes:      ClassAll,
		SpecialChars: URLSpecialChars,
	}
}

// Validate reports whether the policy can be generated. Unlike the generator
// it also rejects negative values, a minimum for a disabled class and an
// empty class set, since those are configuration mistakes.
func (p Policy) Validate() error {
	const op = "Policy.Validate"

	invalid := func(reason string) error {
		return errors.InvalidParameter(errors.ModuleStringx, op, reason).
			Detail("policy", p.Name).
			Build()
	}

	if p.Length < 0 {
		return invalid("length must not be negative")
	}
	if p.Classes&ClassAll == ClassNone {
		return invalid("at least one character class must be enabled")
	}
	for class, count := range p.Minimums.Map() {
		if count < 0 {
			return invalid("minimum for " + class.String() + " must not be negative")
		}
		if !p.Classes.Has(class) {
			return invalid("minimum for disabled class " + class.String())
		}
	}

	if _, err := newPlan(op, p.Length, p.Classes, p.SpecialChars, p.Minimums.Map()); err != nil {
		return errors.InvalidParameter(errors.ModuleStringx, op, "policy cannot be generated").
			Cause(err).
			Detail("policy", p.Name).
			Build()
	}
	return nil
}

// Generate returns a string for the policy from the default generator
func (p Policy) Generate() (string, error) {
	return defaultGenerator.Generate(p)
}

// Generate returns a string for the policy
func (g *Generator) Generate(p Policy) (string, error) {
	return g.GenerateSecureRandomString(p.Length, p.Classes, p.SpecialChars, p.Minimums.Map())
}
