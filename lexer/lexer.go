// SPDX-License-Identifier: MIT

package lexer

import "math"

// ParseLeadingSign consumes an optional '+' or '-' at the start of s.
// It reports neg=true for '-' and returns the input after the sign.
// An empty s yields ok=false: there is nothing to parse.
func ParseLeadingSign(s string) (neg bool, rest string, ok bool) {
	if len(s) == 0 {
		return false, s, false
	}
	switch s[0] {
	case '-':
		return true, s[1:], true
	case '+':
		return false, s[1:], true
	}

	return false, s, true
}

// ParseMantissa scans the digit run of a literal (after its sign).
//
// Digits are accumulated by multiply-by-10-and-add; '_' is skipped and a
// single '.' splits integer from fraction digits. Scanning stops at 'e'/'E'
// (HasExponent=true, rest starts right after the marker) or at the end of s.
//
// ok=false when:
//   - a second '.' or a byte outside [0-9._eE] is met,
//   - a (MaxDigits+1)-th digit is met,
//   - the run holds no digit at all.
func ParseMantissa(s string) (m Mantissa, rest string, ok bool) {
	var (
		digits, preDecimal int
		decimalSeen        bool
		i                  int
	)

scan:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c == '.':
			if decimalSeen {
				return Mantissa{}, s, false
			}
			decimalSeen = true
		case c == 'e' || c == 'E':
			m.HasExponent = true
			i++

			break scan
		case isDigit(c):
			if digits == MaxDigits {
				return Mantissa{}, s, false
			}
			m.Man = m.Man*10 + uint64(c-'0')
			digits++
			if !decimalSeen {
				preDecimal++
			}
		default:
			return Mantissa{}, s, false
		}
	}
	if digits == 0 {
		return Mantissa{}, s, false
	}
	m.Exp10 = int16(preDecimal - digits)

	return m, s[i:], true
}

// ParseExp10 parses the exponent that follows an 'e'/'E' marker and must
// consume all of s: an optional sign, then a digit, then any run of digits
// and '_'. The magnitude is checked against int16 after every digit, so an
// arbitrarily long run cannot overflow.
func ParseExp10(s string) (int16, bool) {
	if len(s) == 0 {
		return 0, false
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 || !isDigit(s[0]) {
		return 0, false
	}

	exp := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if !isDigit(c) {
			return 0, false
		}
		exp = exp*10 + int(c-'0')
		if exp > math.MaxInt16 {
			return 0, false
		}
	}
	if neg {
		exp = -exp
	}

	return int16(exp), true
}

// ParseManExp10 lexes a whole literal into a ManExp10.
//
// The implicit exponent from fraction digits and the explicit exponent are
// summed in int and range-checked; a sum outside int16 is a rejection.
func ParseManExp10(s string) (ManExp10, bool) {
	neg, rest, ok := ParseLeadingSign(s)
	if !ok {
		return ManExp10{}, false
	}
	m, rest, ok := ParseMantissa(rest)
	if !ok {
		return ManExp10{}, false
	}

	var explicit int16
	if m.HasExponent {
		if explicit, ok = ParseExp10(rest); !ok {
			return ManExp10{}, false
		}
	}

	e10 := int(m.Exp10) + int(explicit)
	if e10 < math.MinInt16 || e10 > math.MaxInt16 {
		return ManExp10{}, false
	}

	return ManExp10{Neg: neg, Man: m.Man, E10: int16(e10)}, true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
