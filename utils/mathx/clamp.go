// File: clamp.go
// Title: Range Clamping Functions
// Description: Clamps integers, floats and any ordered type into a closed
//              range. Used by colorx to keep channel, alpha and percentage
//              values inside their domains.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation

package mathx

import (
	"golang.org/x/exp/constraints"
)

// ClampInt returns min if value < min, max if value > max, else value.
// ClampInt(v, math.MinInt, math.MaxInt) is a no-op.
func ClampInt(value, min, max int) int {
	return Clamp(value, min, max)
}

// ClampFloat returns min if value < min, max if value > max, else value.
// NaN resolves to min.
func ClampFloat(value, min, max float64) float64 {
	return Clamp(value, min, max)
}

// Clamp limits value to the closed range [min, max]. The lower bound is
// checked first, so min wins when min > max. For floating point types NaN
// resolves to min.
func Clamp[T constraints.Ordered](value, min, max T) T {
	// NaN is the only value not equal to itself
	if value != value {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// AtLeast returns value, raised to min if it is smaller
func AtLeast[T constraints.Ordered](value, min T) T {
	if value != value || value < min {
		return min
	}
	return value
}

// AtMost returns value, lowered to max if it is larger
func AtMost[T constraints.Ordered](value, max T) T {
	if value != value || value > max {
		return max
	}
	return value
}
