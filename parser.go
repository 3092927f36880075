// SPDX-License-Identifier: MIT

package elfloat

import (
	"math"

	"github.com/katalvlaran/elfloat/fastpath"
	"github.com/katalvlaran/elfloat/lexer"
)

// Parser sequences lexer → fast path → fallback.
// It is immutable after New and safe for concurrent use.
type Parser struct {
	fallback Fallback
}

// New returns a Parser configured by opts. The default fallback is StdFallback.
func New(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Parser{fallback: o.fallback}
}

var defaultParser = New()

// ParseFloat parses s with the default Parser.
func ParseFloat(s string) (float64, error) {
	return defaultParser.ParseFloat(s)
}

// ParseFloat returns the float64 nearest to the decimal literal s.
//
// Literals the lexer rejects and values the fast path cannot certify go to
// the fallback with s unchanged, and its result is returned as is.
// A finite literal beyond the float64 range yields ±Inf and a *ParseError
// wrapping ErrRange, the same outcome strconv reports.
func (p *Parser) ParseFloat(s string) (float64, error) {
	m, ok := lexer.ParseManExp10(s)
	if ok {
		if m.Man == 0 {
			if m.Neg {
				return math.Copysign(0, -1), nil
			}

			return 0, nil
		}
		f, ok := fastpath.Convert(m)
		if ok {
			if math.IsInf(f, 0) {
				return f, rangeError(s)
			}

			return f, nil
		}
	}

	if p.fallback == nil {
		return 0, abstainError(s)
	}

	return p.fallback.ParseFloat(s)
}
