// SPDX-License-Identifier: MIT

package fastpath

import "math"

const (
	mantBits     = 52
	mantMask     = 1<<mantBits - 1
	maxBiasedExp = 0x7FF
	signMask     = 1 << 63
)

// floatBits is an IEEE-754 double split into sign, 11-bit biased exponent
// and 52-bit fraction. exp == 0 encodes zero and subnormals.
type floatBits struct {
	neg  bool
	exp  uint64
	mant uint64
}

func (b floatBits) float64() float64 {
	u := b.exp<<mantBits | b.mant&mantMask
	if b.neg {
		u |= signMask
	}

	return math.Float64frombits(u)
}

func signedZero(neg bool) float64 { return floatBits{neg: neg}.float64() }

func signedInf(neg bool) float64 { return floatBits{neg: neg, exp: maxBiasedExp}.float64() }
