// File: benchmark_test.go
// Title: Performance Benchmarks for mathx Package
// Description: Benchmarks for clamping and ratio helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial benchmark implementation

package mathx

import (
	"testing"
)

var benchSinkInt int
var benchSinkFloat float64

func BenchmarkClampInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkInt = ClampInt(i%600-300, 0, 255)
	}
}

func BenchmarkClampFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkFloat = ClampFloat(float64(i%3)-1.0, 0, 1)
	}
}

func BenchmarkClampGenericUint8(b *testing.B) {
	var sink uint8
	for i := 0; i < b.N; i++ {
		sink = Clamp(uint8(i), 16, 240)
	}
	_ = sink
}

func BenchmarkRuleOfThree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkFloat, _ = RuleOfThree(7, 13, i, true)
	}
}

func BenchmarkGoldenRatio(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSinkFloat, _ = GoldenRatio(float64(i), OverallGiven, WithDecimalPlaces(2))
	}
}
