// SPDX-License-Identifier: MIT

// Package pow10 provides the 128-bit power-of-ten table behind the
// Eisel-Lemire fast path, together with the offline generator that builds it.
//
// 🚀 What is in the table?
//
//	For every e10 in [MinExp10, MaxExp10] one Entry:
//	  • Hi:Lo    - the top 128 bits of 10^e10 (top bit set), truncated
//	               toward zero, so negative powers are under-estimates
//	  • BiasedE2 - e2 + Bias, where 10^e10 ≈ (Hi:Lo) · 2^e2
//
//	Bias = 1214 = 1023 (IEEE-754 double bias) + 191 (3·64 − 1), which lines the
//	exponent up with a 64×128-bit product so the fast path can use it as-is.
//
// ✨ Lifecycle:
//
//   - table_gen.go is produced ahead of time by cmd/genpow10 (go generate).
//   - The table is a package-level array: built before main runs, never
//     written afterwards, safe for any number of concurrent readers.
//   - Lookup is O(1) and range-checked.
//
// ⚙️ Generation (build time only):
//
//  1. z = 2^Precision · 10^e10 in exact integer arithmetic (multiply for
//     e10 ≥ 0, truncating divide for e10 < 0).
//  2. Shift z right until it has exactly 128 significant bits, counting
//     the shifts into e2 (which starts at −Precision).
//  3. Self-check: e2 + Bias must equal ⌊e10 · 217706 / 65536⌋ + 1087.
//     A mismatch fails generation; the table is never written in that state.
//
// Regenerate whenever the exponent range changes:
//
//	go generate ./pow10
package pow10
