// SPDX-License-Identifier: MIT

package fastpath_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/elfloat/fastpath"
	"github.com/katalvlaran/elfloat/lexer"
	"github.com/katalvlaran/elfloat/pow10"
)

// ConvertSuite checks Convert against strconv.ParseFloat, bit for bit.
type ConvertSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *ConvertSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20240601))
}

// lex turns a literal into its triple, failing the test on a lex error.
func (s *ConvertSuite) lex(lit string) lexer.ManExp10 {
	m, ok := lexer.ParseManExp10(lit)
	require.True(s.T(), ok, "ParseManExp10(%q)", lit)

	return m
}

// requireSameBits converts lit and compares with the standard library.
func (s *ConvertSuite) requireSameBits(lit string) {
	want, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Overflow: strconv reports ErrRange and returns ±Inf.
		require.True(s.T(), math.IsInf(want, 0), "strconv(%q): %v", lit, err)
	}
	got, ok := fastpath.Convert(s.lex(lit))
	require.True(s.T(), ok, "Convert(%q) abstained", lit)
	require.Equal(s.T(), math.Float64bits(want), math.Float64bits(got),
		"Convert(%q) = %v, want %v", lit, got, want)
}

// TestKnownValues: ordinary literals across the range.
func (s *ConvertSuite) TestKnownValues() {
	for _, lit := range []string{
		"1", "0.1", "0.3", "3.14", "-2.5", "1e22", "1e23", "1e308",
		"-0.0001", "6.02214076e23", "1.602176634e-19",
		"123456789012345678e-5", "9999999999999999999",
		"9007199254740994", "18014398509481993",
		"1.7976931348623157e308", "4.4501477170144023e-308",
	} {
		s.requireSameBits(lit)
	}
}

// TestSubnormals: the narrow rounding window below the smallest normal.
func (s *ConvertSuite) TestSubnormals() {
	for _, lit := range []string{
		"5e-324",
		"4.9406564584124654e-324",
		"2.4703282292062328e-324",
		"2.2250738585072011e-308",
		"2.2250738585072012e-308",
		"2.2250738585072013e-308",
		"2.2250738585072014e-308",
	} {
		s.requireSameBits(lit)
	}
}

// TestUnderflowToZero: values below half the smallest subnormal.
func (s *ConvertSuite) TestUnderflowToZero() {
	for _, lit := range []string{"2.4703282292062327e-324", "1e-342", "-1e-342"} {
		got, ok := fastpath.Convert(s.lex(lit))
		require.True(s.T(), ok, "Convert(%q) abstained", lit)
		require.Zero(s.T(), got, "Convert(%q)", lit)
		require.Equal(s.T(), lit[0] == '-', math.Signbit(got), "sign of Convert(%q)", lit)
	}
}

// TestOverflowToInf: finite literals beyond the largest double.
func (s *ConvertSuite) TestOverflowToInf() {
	got, ok := fastpath.Convert(s.lex("1.7976931348623159e308"))
	require.True(s.T(), ok)
	require.True(s.T(), math.IsInf(got, 1), "got %v", got)

	got, ok = fastpath.Convert(s.lex("-9e308"))
	require.True(s.T(), ok)
	require.True(s.T(), math.IsInf(got, -1), "got %v", got)
}

// TestZeroMantissa: zero keeps its sign whatever the exponent.
func (s *ConvertSuite) TestZeroMantissa() {
	for _, m := range []lexer.ManExp10{
		{Man: 0, E10: 0},
		{Man: 0, E10: 30000},
		{Neg: true, Man: 0, E10: -30000},
	} {
		got, ok := fastpath.Convert(m)
		require.True(s.T(), ok, "Convert(%v)", m)
		require.Zero(s.T(), got)
		require.Equal(s.T(), m.Neg, math.Signbit(got), "sign of Convert(%v)", m)
	}
}

// TestOutOfTableAbstains: exponents without a table entry.
func (s *ConvertSuite) TestOutOfTableAbstains() {
	for _, m := range []lexer.ManExp10{
		{Man: 1, E10: int16(pow10.MaxExp10 + 1)},
		{Man: 1, E10: int16(pow10.MinExp10 - 1)},
		{Man: 12345, E10: math.MaxInt16},
		{Neg: true, Man: 1, E10: math.MinInt16 + 1},
	} {
		_, ok := fastpath.Convert(m)
		require.False(s.T(), ok, "Convert(%v) should abstain", m)
	}
}

// TestHalfwayAbstains: exact midpoints between two doubles are never
// guessed.
func (s *ConvertSuite) TestHalfwayAbstains() {
	for _, lit := range []string{"9007199254740993", "9007199254740995"} {
		_, ok := fastpath.Convert(s.lex(lit))
		require.False(s.T(), ok, "Convert(%q) should abstain", lit)
	}
	// 2^53 + odd sits halfway between neighbours two apart.
	for i := 0; i < 1000; i++ {
		man := uint64(1)<<53 + uint64(s.rng.Int63n(1<<51))<<1 + 1
		_, ok := fastpath.Convert(lexer.ManExp10{Man: man})
		require.False(s.T(), ok, "Convert(%d) should abstain", man)
	}
}

// TestRandomShortest: shortest representations of random doubles come back
// unchanged, and abstentions stay rare.
func (s *ConvertSuite) TestRandomShortest() {
	const n = 200000
	abstained := 0
	for i := 0; i < n; i++ {
		f := math.Float64frombits(s.rng.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		lit := strconv.FormatFloat(f, 'e', -1, 64)
		got, ok := fastpath.Convert(s.lex(lit))
		if !ok {
			abstained++
			continue
		}
		require.Equal(s.T(), math.Float64bits(f), math.Float64bits(got), "Convert(%q)", lit)
	}
	require.Less(s.T(), abstained, n/100, "abstained on %d of %d literals", abstained, n)
}

// TestRandomTriples: arbitrary mantissas across the whole table.
func (s *ConvertSuite) TestRandomTriples() {
	span := int64(pow10.MaxExp10 - pow10.MinExp10 + 1)
	for i := 0; i < 100000; i++ {
		m := lexer.ManExp10{
			Neg: s.rng.Intn(2) == 1,
			Man: uint64(s.rng.Int63n(1e18)) + 1,
			E10: int16(s.rng.Int63n(span) + int64(pow10.MinExp10)),
		}
		got, ok := fastpath.Convert(m)
		if !ok {
			continue
		}
		want, _ := strconv.ParseFloat(m.String(), 64)
		require.Equal(s.T(), math.Float64bits(want), math.Float64bits(got), "Convert(%v)", m)
	}
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertSuite))
}
