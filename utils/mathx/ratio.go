// File: ratio.go
// Title: Proportion Calculations
// Description: Rule of three and golden ratio splits for layout and scaling
//              calculations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

package mathx

import (
	"math"

	"github.com/msto63/toolbox/core/errors"
)

// Phi is the golden ratio (1 + sqrt(5)) / 2
var Phi = (1 + math.Sqrt(5)) / 2

// RuleOfThree returns the value that relates to x2 as y1 relates to x1,
// i.e. y1 * x2 / x1. With round set the result is rounded half away from zero.
// Example: RuleOfThree(4, 10, 6, true) returns 15
func RuleOfThree(x1, y1, x2 int, round bool) (float64, error) {
	if x1 == 0 {
		return 0, errors.InvalidParameter(errors.ModuleMathx, "RuleOfThree", "x1 must not be zero").
			Detail("x1", x1).
			Detail("y1", y1).
			Detail("x2", x2).
			Build()
	}

	result := float64(y1) * float64(x2) / float64(x1)
	if round {
		return math.Round(result), nil
	}
	return result, nil
}

// MustRuleOfThree is RuleOfThree, panicking when x1 is zero
func MustRuleOfThree(x1, y1, x2 int, round bool) float64 {
	result, err := RuleOfThree(x1, y1, x2, round)
	if err != nil {
		panic(err)
	}
	return result
}

// GoldenRatioMode selects which length GoldenRatio is given
type GoldenRatioMode int

const (
	// OverallGiven splits the given total length into a long and a short part
	OverallGiven GoldenRatioMode = iota

	// LongSideGiven derives the short part from the given long part
	LongSideGiven

	// ShortSideGiven derives the long part from the given short part
	ShortSideGiven
)

// String returns the string representation of the mode
func (m GoldenRatioMode) String() string {
	switch m {
	case OverallGiven:
		return "overall"
	case LongSideGiven:
		return "long"
	case ShortSideGiven:
		return "short"
	default:
		return "unknown"
	}
}

type goldenRatioOptions struct {
	decimalPlaces int
	truncate      bool
}

// GoldenRatioOption configures rounding of GoldenRatio results
type GoldenRatioOption func(*goldenRatioOptions)

// WithDecimalPlaces rounds both results to n decimal places. It takes
// precedence over WithTruncation. Negative n disables rounding.
func WithDecimalPlaces(n int) GoldenRatioOption {
	return func(o *goldenRatioOptions) {
		o.decimalPlaces = n
	}
}

// WithTruncation drops the fractional part of both results
func WithTruncation() GoldenRatioOption {
	return func(o *goldenRatioOptions) {
		o.truncate = true
	}
}

// GoldenRatio splits or extends length by the golden ratio and returns the
// long part first. Unknown modes are treated as OverallGiven.
// Example: GoldenRatio(100, OverallGiven, WithDecimalPlaces(2)) returns 61.8, 38.2
func GoldenRatio(length float64, mode GoldenRatioMode, opts ...GoldenRatioOption) (long, short float64) {
	o := goldenRatioOptions{decimalPlaces: -1}
	for _, opt := range opts {
		opt(&o)
	}

	switch mode {
	case LongSideGiven:
		long, short = length, length/Phi
	case ShortSideGiven:
		long, short = length*Phi, length
	default:
		long = length / Phi
		short = length - long
	}

	switch {
	case o.decimalPlaces >= 0:
		return roundTo(long, o.decimalPlaces), roundTo(short, o.decimalPlaces)
	case o.truncate:
		return math.Trunc(long), math.Trunc(short)
	default:
		return long, short
	}
}

func roundTo(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}
