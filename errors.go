// SPDX-License-Identifier: MIT

package elfloat

import (
	"errors"
	"strconv"
)

// Sentinel errors.
var (
	// ErrSyntax is strconv's syntax sentinel, so errors.Is works across both parsers.
	ErrSyntax = strconv.ErrSyntax

	// ErrRange is strconv's range sentinel: the value overflows a float64.
	ErrRange = strconv.ErrRange

	// ErrAbstained reports that the fast path could not decide and no
	// fallback was configured (WithFastPathOnly).
	ErrAbstained = errors.New("elfloat: fast path abstained")
)

// fnParseFloat names the failing function in a ParseError.
const fnParseFloat = "ParseFloat"

// ParseError records a failed conversion decided without the fallback.
// Errors produced by the fallback are returned unchanged.
type ParseError struct {
	Func string // the failing function
	Num  string // the input
	Err  error  // the reason: ErrRange or ErrAbstained
}

func (e *ParseError) Error() string {
	return "elfloat." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func rangeError(s string) *ParseError { return &ParseError{fnParseFloat, s, ErrRange} }

func abstainError(s string) *ParseError { return &ParseError{fnParseFloat, s, ErrAbstained} }
