// SPDX-License-Identifier: MIT

package elfloat_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/elfloat"
)

var benchInputs = []string{
	"0.1", "3.14159265358979", "6.02214076e23", "1.602176634e-19",
	"123456789012345678e-5", "2.2250738585072014e-308", "-1_000.5",
}

// BenchmarkParseFloat measures the full pipeline on fast-path literals.
func BenchmarkParseFloat(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		f, _ := elfloat.ParseFloat(benchInputs[i%len(benchInputs)])
		sink = f
	}
	_ = sink
}

// BenchmarkParseFloatFallback measures an abstention plus strconv.
func BenchmarkParseFloatFallback(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		f, _ := elfloat.ParseFloat("9007199254740993")
		sink = f
	}
	_ = sink
}

// BenchmarkStrconvParseFloat is the baseline.
func BenchmarkStrconvParseFloat(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		// strconv has no separators
		f, _ := strconv.ParseFloat(benchInputs[i%(len(benchInputs)-1)], 64)
		sink = f
	}
	_ = sink
}
