// SPDX-License-Identifier: MIT

// Package fastpath implements the Eisel-Lemire decimal-to-binary conversion:
// a fixed-width, abstain-or-correct computation of the float64 nearest to
// Man · 10^E10.
//
// ⚙️ Algorithm:
//
//  0. Exact shortcut: a mantissa below 2^53 times or divided by an exactly
//     representable power of ten needs one IEEE operation, which is already
//     correctly rounded (short literals such as "2.5" land here).
//  1. Range: E10 outside the pow10 table abstains.
//  2. Normalize Man so its top bit is set (s = leading zeros).
//  3. Multiply by the 128-bit table entry: a full 192-bit product p2:p1:p0.
//  4. Carry check: the table truncates toward zero, so the exact product is
//     larger by less than Man in the last limb. If that could carry into the
//     bits used for rounding, abstain.
//  5. Take the top 54 bits of p2 (53 + round bit), exponent BiasedE2 − s.
//  6. Round to nearest even at 1 bit (normals) or 2 − exp bits (subnormals).
//     A dropped part that looks exactly like one half is ambiguous: the true
//     value may be the tie or just above it. Abstain.
//  7. Overflow yields ±Inf; values below half the smallest subnormal ±0.
//
// Guarantee: whenever Convert reports ok, the result is the correctly rounded
// (ties-to-even) float64 of the exact decimal value. It never guesses; it
// only abstains, and the caller falls back to an exact conversion.
//
// Complexity: O(1), two 64×64 multiplications, no allocation.
package fastpath
