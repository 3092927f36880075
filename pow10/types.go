// SPDX-License-Identifier: MIT

package pow10

const (
	// Bias is added to the binary exponent stored in every Entry.
	// 1023 is the IEEE-754 double bias; 191 = 3·64 − 1 accounts for the
	// widths of a 64-bit mantissa times a 128-bit significand.
	Bias = 1214

	// Precision is the working width, in bits, of the generator. 2^2048 is
	// far above 10^400, so no intermediate loses precision.
	Precision = 2048

	// estimateMul is log2(10)·2^16, rounded.
	estimateMul = 217706

	// estimateOffset is Bias − 127: the biased exponent of a 128-bit value
	// whose top bit sits at 2^0.
	estimateOffset = 1087

	// maxAbsExp10 bounds the exponents GenerateEntry accepts. The estimate
	// above is exact on this range.
	maxAbsExp10 = 400
)

// Entry is a 128-bit fixed-point approximation of one power of ten.
//
// Fields:
//   - Hi, Lo   - top and bottom halves of the significand; Hi>>63 == 1.
//   - BiasedE2 - binary exponent e2 + Bias, with 10^e10 ≈ (Hi:Lo)·2^e2.
type Entry struct {
	Hi       uint64
	Lo       uint64
	BiasedE2 int16
}
