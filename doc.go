// Package elfloat converts decimal floating-point literals into correctly
// rounded IEEE-754 doubles with the Eisel-Lemire algorithm, falling back to
// an exact parser only when the fast path cannot prove its answer.
//
// 🚀 What is elfloat?
//
//	A small, allocation-free decimal→float64 parser built from three layers:
//		• lexer/    - text → (sign, 64-bit mantissa, decimal exponent)
//		• pow10/    - precomputed 128-bit powers of ten, plus their generator
//		• fastpath/ - the Eisel-Lemire engine: correct result or abstain
//
// ✨ Guarantees:
//
//   - Never wrong: every fast-path answer is the round-to-nearest-even double
//   - Abstentions and lexer rejects reach the fallback with the original text
//   - Negative zero preserved ("-0.0" → -0)
//   - Safe for concurrent use: the power table is immutable after init
//
// ⚙️ Usage:
//
//	f, err := elfloat.ParseFloat("6.02214076e23")
//
//	p := elfloat.New(elfloat.WithFallback(myExactParser))
//	f, err = p.ParseFloat("1_000.5")
//
// Literals may contain '_' separators between digits. strconv rejects those
// in decimal literals, so a separated literal the fast path abstains on fails
// with the default fallback. Hex floats, "inf" and "nan" are handled by the
// fallback, if at all.
//
// The power table in pow10/table_gen.go is regenerated with
//
//	go generate ./pow10
package elfloat
