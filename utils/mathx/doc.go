// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides range clamping and proportion helpers
//              used across the toolbox packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with clamping and ratio functions

// Package mathx provides range clamping and proportion helpers.
//
// # Clamping
//
// ClampInt and ClampFloat limit a value to a closed range with explicit
// bounds. The generic Clamp, AtLeast and AtMost accept any ordered type:
//
//	channel := mathx.ClampInt(r, 0, 255)
//	alpha := mathx.ClampFloat(a, 0, 1)
//	hue := mathx.Clamp(h, 0.0, 360.0)
//
// Clamping is total: it never fails, the lower bound is checked first and
// NaN resolves to the lower bound. Passing math.MinInt and math.MaxInt as
// bounds is a no-op.
//
// # Proportions
//
// RuleOfThree solves y1/x1 = y2/x2 for y2 and reports x1 == 0 as an
// INVALID_PARAMETER error. GoldenRatio splits or extends a length by the
// golden ratio:
//
//	long, short := mathx.GoldenRatio(960, mathx.OverallGiven, mathx.WithTruncation())
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package mathx
