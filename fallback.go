// SPDX-License-Identifier: MIT

package elfloat

import "strconv"

// Fallback is an exact decimal→float64 conversion used when the fast path
// abstains. It receives the original literal and its result is returned to
// the caller verbatim.
type Fallback interface {
	ParseFloat(s string) (float64, error)
}

// FallbackFunc adapts a plain function to Fallback.
type FallbackFunc func(s string) (float64, error)

// ParseFloat calls f(s).
func (f FallbackFunc) ParseFloat(s string) (float64, error) { return f(s) }

// StdFallback is strconv.ParseFloat at 64-bit precision. It is the default.
var StdFallback Fallback = FallbackFunc(func(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
})
