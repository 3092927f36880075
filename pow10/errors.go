// SPDX-License-Identifier: MIT

package pow10

import "errors"

// Generator failures. All of them are fatal for a generation run: a table
// produced alongside any of these errors must not be written.
var (
	// ErrExp10Range indicates an exponent outside the generator's supported range.
	ErrExp10Range = errors.New("pow10: exponent out of generator range")

	// ErrEmptyRange indicates min > max, or an empty entry list to emit.
	ErrEmptyRange = errors.New("pow10: empty exponent range")

	// ErrDivideByZero indicates that a negative power had a zero divisor.
	ErrDivideByZero = errors.New("pow10: division by zero")

	// ErrBitLength indicates that a normalized significand is not 128 bits wide.
	ErrBitLength = errors.New("pow10: significand is not 128 bits")

	// ErrSelfCheck indicates that the computed biased exponent disagrees with
	// the independent log2(10) estimate.
	ErrSelfCheck = errors.New("pow10: biased exponent self-check failed")
)
