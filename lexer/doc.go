// SPDX-License-Identifier: MIT

// Package lexer reduces a decimal floating-point literal to an exact
// (sign, mantissa, power-of-ten) triple without allocating.
//
// 🚀 What does it accept?
//
//	[+|-] digits [. digits] [(e|E) [+|-] digits]
//
//	  • '_' may appear anywhere among the digits and is ignored
//	  • at least one mantissa digit is required ("." or "-" alone are rejected)
//	  • the exponent marker needs at least one digit after its optional sign
//
// ✨ What does it reject?
//
//   - mantissas longer than MaxDigits (19) significant positions, so Man
//     always fits a uint64 with headroom for 128-bit products
//   - exponents (explicit, or explicit + implicit) outside int16
//   - anything else: a second '.', stray signs, letters, empty input
//
// A rejection is not an error: it only means the literal has to be handled
// by an exact slow path. The lexer never returns a partial result.
//
// ⚙️ Usage:
//
//	m, ok := lexer.ParseManExp10("137.25e+17")
//	// m == lexer.ManExp10{Neg: false, Man: 13725, E10: 15}, ok == true
//
// The step functions ParseLeadingSign, ParseMantissa and ParseExp10 are
// exported as well. The first two return the unconsumed remainder of their
// input; ParseExp10 must consume all of it.
package lexer
