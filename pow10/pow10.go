// SPDX-License-Identifier: MIT

package pow10

//go:generate go run ../cmd/genpow10 -min -342 -max 308 -pkg pow10 -out table_gen.go

const (
	// MinExp10 is the smallest decimal exponent held by the table. Any
	// mantissa below 10^19 times 10^(MinExp10-1) rounds to zero.
	MinExp10 = tableMinExp10

	// MaxExp10 is the largest decimal exponent held by the table. Any
	// non-zero mantissa times 10^(MaxExp10+1) overflows a float64.
	MaxExp10 = tableMinExp10 + len(table) - 1
)

// Lookup returns the Entry for 10^e10, or false when e10 is outside
// [MinExp10, MaxExp10].
func Lookup(e10 int) (Entry, bool) {
	if e10 < MinExp10 || e10 > MaxExp10 {
		return Entry{}, false
	}

	return table[e10-MinExp10], true
}

// Len reports the number of entries in the table.
func Len() int { return len(table) }
