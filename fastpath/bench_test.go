// SPDX-License-Identifier: MIT

package fastpath_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/elfloat/fastpath"
	"github.com/katalvlaran/elfloat/lexer"
)

var benchLiterals = []string{
	"0.1", "3.14159265358979", "6.02214076e23", "1.602176634e-19",
	"123456789012345678e-5", "2.2250738585072014e-308", "1.7976931348623157e308",
}

// BenchmarkConvert measures the engine alone on pre-lexed input.
func BenchmarkConvert(b *testing.B) {
	ms := make([]lexer.ManExp10, len(benchLiterals))
	for i, lit := range benchLiterals {
		ms[i], _ = lexer.ParseManExp10(lit)
	}
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		f, _ := fastpath.Convert(ms[i%len(ms)])
		sink = f
	}
	_ = sink
}

// BenchmarkStrconv is the baseline for BenchmarkConvert plus lexing.
func BenchmarkStrconv(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		f, _ := strconv.ParseFloat(benchLiterals[i%len(benchLiterals)], 64)
		sink = f
	}
	_ = sink
}
