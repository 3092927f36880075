// SPDX-License-Identifier: MIT

package fastpath

import "github.com/katalvlaran/elfloat/lexer"

// float64pow10 holds the powers of ten a float64 represents exactly.
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// convertExact handles a mantissa that is an exact float64 scaled by an
// exact power of ten: a single IEEE multiplication or division is then
// correctly rounded. Three shapes qualify:
//
//	Man            (E10 == 0)
//	Man · 10^k     (k ≤ 22, or k ≤ 37 when the extra zeros keep Man ≤ 10^15)
//	Man / 10^k     (k ≤ 22)
func convertExact(m lexer.ManExp10) (float64, bool) {
	if m.Man>>(mantBits+1) != 0 {
		return 0, false
	}
	f := float64(m.Man)
	if m.Neg {
		f = -f
	}

	exp := int(m.E10)
	switch {
	case exp == 0:
		return f, true
	case exp > 0 && exp <= 15+22:
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			return 0, false
		}

		return f * float64pow10[exp], true
	case exp < 0 && exp >= -22:
		return f / float64pow10[-exp], true
	}

	return 0, false
}
