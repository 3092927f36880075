// SPDX-License-Identifier: MIT

package elfloat_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/elfloat"
)

// ParserSuite checks the orchestrator against strconv.ParseFloat.
type ParserSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *ParserSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(7))
}

// requireSameBits fails unless got and want are the same double.
func (s *ParserSuite) requireSameBits(want, got float64, lit string) {
	require.Equal(s.T(), math.Float64bits(want), math.Float64bits(got),
		"ParseFloat(%q) = %v, want %v", lit, got, want)
}

// TestRoundTripBoundaries: the special doubles survive format→parse.
func (s *ParserSuite) TestRoundTripBoundaries() {
	for _, v := range []float64{
		0,
		math.Copysign(0, -1),
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		0x1p-1022, // smallest normal
		math.MaxFloat64,
		-math.MaxFloat64,
		1,
		0.1,
	} {
		lit := strconv.FormatFloat(v, 'g', -1, 64)
		got, err := elfloat.ParseFloat(lit)
		require.NoError(s.T(), err, "ParseFloat(%q)", lit)
		s.requireSameBits(v, got, lit)
	}
}

// TestRoundTripRandom: shortest literals of random doubles in two formats.
func (s *ParserSuite) TestRoundTripRandom() {
	for i := 0; i < 100000; i++ {
		v := math.Float64frombits(s.rng.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		for _, fmtc := range []byte{'e', 'g'} {
			lit := strconv.FormatFloat(v, fmtc, -1, 64)
			got, err := elfloat.ParseFloat(lit)
			require.NoError(s.T(), err, "ParseFloat(%q)", lit)
			s.requireSameBits(v, got, lit)
		}
	}
}

// TestDeterminism: repeated calls agree.
func (s *ParserSuite) TestDeterminism() {
	for _, lit := range []string{"0.1", "9007199254740993", "1e-400", "abc", "1.7976931348623159e308"} {
		f1, err1 := elfloat.ParseFloat(lit)
		f2, err2 := elfloat.ParseFloat(lit)
		s.requireSameBits(f1, f2, lit)
		assert.Equal(s.T(), err1, err2, "errors for %q", lit)
	}
}

// TestFallbackEquivalence: same value and same error class as strconv for
// literals on every route (fast path, abstention, lexer reject).
func (s *ParserSuite) TestFallbackEquivalence() {
	for _, lit := range []string{
		// fast path
		"0", "-0", "0.1", ".5", "5.", "+.5", "1.e5", "-2.5", "1e23",
		"4.9406564584124654e-324", "2.2250738585072011e-308",
		"1.7976931348623157e308", "1.7976931348623159e308", "-9e308",
		"2.4703282292062327e-324", "-1e-342",
		// abstentions
		"9007199254740993", "9007199254740995", "1e309", "-1e309", "1e-343", "1e-400",
		// lexer rejects
		"12345678901234567890", "123456789012345678901234567890e-10",
		"1e99999", "0e99999", "inf", "-Infinity", "NaN", "0x1p-2", "0x1.8p1",
		"", "-", ".", "e5", "1e", "1e+", "1..2", "1.2.3", "--1", "+-1", "1 ", " 1", "abc",
	} {
		want, wantErr := strconv.ParseFloat(lit, 64)
		got, err := elfloat.ParseFloat(lit)
		s.requireSameBits(want, got, lit)
		require.Equal(s.T(), wantErr == nil, err == nil, "ParseFloat(%q) error = %v, want %v", lit, err, wantErr)
		if wantErr != nil {
			assert.Equal(s.T(), errors.Is(wantErr, strconv.ErrRange), errors.Is(err, elfloat.ErrRange), "range class of %q", lit)
			assert.Equal(s.T(), errors.Is(wantErr, strconv.ErrSyntax), errors.Is(err, elfloat.ErrSyntax), "syntax class of %q", lit)
		}
	}
}

// TestNegativeZero: the sign of a zero literal is kept. The last literal
// overflows the lexer's exponent and is decided by strconv.
func (s *ParserSuite) TestNegativeZero() {
	for _, lit := range []string{"-0", "-0.0", "-0e10", "-0_0.0_0", "-000e-99999"} {
		got, err := elfloat.ParseFloat(lit)
		require.NoError(s.T(), err, "ParseFloat(%q)", lit)
		require.Zero(s.T(), got)
		require.True(s.T(), math.Signbit(got), "ParseFloat(%q) lost the sign", lit)
	}
}

// TestOverflowError: fast-path overflow reports a range error like strconv.
func (s *ParserSuite) TestOverflowError() {
	got, err := elfloat.ParseFloat("-1.8e308")
	require.True(s.T(), math.IsInf(got, -1))
	require.ErrorIs(s.T(), err, elfloat.ErrRange)
	require.ErrorIs(s.T(), err, strconv.ErrRange)

	var pe *elfloat.ParseError
	require.True(s.T(), errors.As(err, &pe), "error must be *ParseError")
	assert.Equal(s.T(), "ParseFloat", pe.Func)
	assert.Equal(s.T(), "-1.8e308", pe.Num)
	assert.Equal(s.T(), `elfloat.ParseFloat: parsing "-1.8e308": value out of range`, err.Error())
}

// TestFallbackErrorVerbatim: the fallback's own error type reaches the caller.
func (s *ParserSuite) TestFallbackErrorVerbatim() {
	_, err := elfloat.ParseFloat("1.5x")
	require.ErrorIs(s.T(), err, elfloat.ErrSyntax)

	var ne *strconv.NumError
	require.True(s.T(), errors.As(err, &ne), "error must be *strconv.NumError")
	assert.Equal(s.T(), "1.5x", ne.Num)
}

// TestUnderscoreSeparators: separators are accepted on the fast path.
func (s *ParserSuite) TestUnderscoreSeparators() {
	cases := []struct {
		in   string
		want float64
	}{
		{"1_000", 1000},
		{"1_000.5", 1000.5},
		{"-2_5e-1", -2.5},
		{"1e1_0", 1e10},
		{"0.000_001", 1e-6},
	}
	for _, tc := range cases {
		got, err := elfloat.ParseFloat(tc.in)
		require.NoError(s.T(), err, "ParseFloat(%q)", tc.in)
		s.requireSameBits(tc.want, got, tc.in)
	}
}

// TestFastPathOnly: abstentions and lexer rejects surface ErrAbstained.
func (s *ParserSuite) TestFastPathOnly() {
	p := elfloat.New(elfloat.WithFastPathOnly())

	got, err := p.ParseFloat("0.1")
	require.NoError(s.T(), err)
	s.requireSameBits(0.1, got, "0.1")

	for _, lit := range []string{"9007199254740993", "1e-400", "abc", ""} {
		_, err = p.ParseFloat(lit)
		require.ErrorIs(s.T(), err, elfloat.ErrAbstained, "ParseFloat(%q)", lit)
		var pe *elfloat.ParseError
		require.True(s.T(), errors.As(err, &pe))
		assert.Equal(s.T(), lit, pe.Num)
	}
}

// TestCustomFallback: the fallback sees the unmodified literal and only on
// abstention.
func (s *ParserSuite) TestCustomFallback() {
	var seen []string
	p := elfloat.New(elfloat.WithFallback(elfloat.FallbackFunc(func(lit string) (float64, error) {
		seen = append(seen, lit)
		return 42, nil
	})))

	got, err := p.ParseFloat("0.1")
	require.NoError(s.T(), err)
	s.requireSameBits(0.1, got, "0.1")
	require.Empty(s.T(), seen, "fast path must not call the fallback")

	for _, lit := range []string{"9007199254740993", " 1", "1e-400"} {
		got, err = p.ParseFloat(lit)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 42.0, got)
	}
	require.Equal(s.T(), []string{"9007199254740993", " 1", "1e-400"}, seen)
}

// TestWithFallbackNil: a nil fallback is a programming error.
func (s *ParserSuite) TestWithFallbackNil() {
	require.Panics(s.T(), func() { elfloat.WithFallback(nil) })
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}
