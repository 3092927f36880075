// SPDX-License-Identifier: MIT

package lexer

import "strconv"

// MaxDigits is the largest number of mantissa digits the lexer accumulates.
// 10^19-1 < 2^64, so any accepted mantissa fits a uint64.
const MaxDigits = 19

// ManExp10 is the exact value (-1)^Neg · Man · 10^E10.
//
// Fields:
//   - Neg - true when the literal carried a leading '-'.
//   - Man - the literal's digits collapsed into an integer, Man < 10^19.
//   - E10 - implicit (fraction digits) plus explicit (suffix) exponent.
type ManExp10 struct {
	Neg bool
	Man uint64
	E10 int16
}

// String renders m as "[-]<Man>e<E10>", which parses back to the same triple.
func (m ManExp10) String() string {
	buf := make([]byte, 0, 28)
	if m.Neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, m.Man, 10)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(m.E10), 10)

	return string(buf)
}

// Mantissa is the result of scanning the digit run of a literal.
//
// Fields:
//   - Man         - accumulated digits.
//   - Exp10       - digitsBeforePoint - totalDigits (≤ 0).
//   - HasExponent - an 'e' or 'E' marker terminated the run.
type Mantissa struct {
	Man         uint64
	Exp10       int16
	HasExponent bool
}
