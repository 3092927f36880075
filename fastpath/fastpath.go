// SPDX-License-Identifier: MIT

package fastpath

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/elfloat/lexer"
	"github.com/katalvlaran/elfloat/pow10"
)

// Convert returns the float64 nearest to m, or ok=false when correct
// rounding cannot be proven with the 128-bit table.
//
// A zero mantissa yields a zero carrying m's sign.
func Convert(m lexer.ManExp10) (f float64, ok bool) {
	if m.Man == 0 {
		return signedZero(m.Neg), true
	}
	if f, ok = convertExact(m); ok {
		return f, true
	}

	return eiselLemire(m)
}

// eiselLemire is the 128-bit table path for a non-zero mantissa.
func eiselLemire(m lexer.ManExp10) (float64, bool) {
	entry, ok := pow10.Lookup(int(m.E10))
	if !ok {
		return 0, false
	}

	// Normalization.
	s := bits.LeadingZeros64(m.Man)
	man := m.Man << uint(s)

	// Multiplication: p2:p1:p0 = man · Hi:Lo.
	p2, p1 := bits.Mul64(man, entry.Hi)
	mid, p0 := bits.Mul64(man, entry.Lo)
	var carry uint64
	p1, carry = bits.Add64(p1, mid, 0)
	p2 += carry

	// Truncation error is below man units of p0.
	if p2&0x1FF == 0x1FF && p1 == math.MaxUint64 && p0+man < p0 {
		return 0, false
	}

	// Shifting to 54 bits. p2 >= 2^62 since both factors are normalized.
	msb := p2 >> 63
	shift := 9 + msb
	mant54 := p2 >> shift
	exp := int(entry.BiasedE2) - s - int(1^msb)
	lowZero := p2&(1<<shift-1) == 0 && p1 == 0 && p0 == 0

	// Rounding width: one bit for normals, more for subnormals.
	r := 1
	if exp < 1 {
		r = 2 - exp
	}
	if r > 55 {
		return signedZero(m.Neg), true
	}
	half := uint64(1) << uint(r-1)
	dropped := mant54 & (half<<1 - 1)
	kept := mant54 >> uint(r)
	switch {
	case dropped > half:
		kept++
	case dropped == half:
		if lowZero {
			return 0, false
		}
		kept++
	}

	if exp < 1 {
		// A carry out of the fraction lands on the smallest normal exponent.
		return floatBits{neg: m.Neg, exp: kept >> mantBits, mant: kept}.float64(), true
	}
	if kept>>(mantBits+1) != 0 {
		kept >>= 1
		exp++
	}
	if exp >= maxBiasedExp {
		return signedInf(m.Neg), true
	}

	return floatBits{neg: m.Neg, exp: uint64(exp), mant: kept}.float64(), true
}
