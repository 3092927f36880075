// SPDX-License-Identifier: MIT

package pow10_test

import (
	"fmt"

	"github.com/katalvlaran/elfloat/pow10"
)

// ExampleLookup reads the entry for 10^1 = 0xA000…·2^(1090-1214).
func ExampleLookup() {
	e, ok := pow10.Lookup(1)
	fmt.Printf("%t 0x%016X 0x%016X %d\n", ok, e.Hi, e.Lo, int(e.BiasedE2)-pow10.Bias)

	_, ok = pow10.Lookup(pow10.MaxExp10 + 1)
	fmt.Println(ok)
	// Output:
	// true 0xA000000000000000 0x0000000000000000 -124
	// false
}

// ExampleGenerateEntry computes one entry at build time.
func ExampleGenerateEntry() {
	e, err := pow10.GenerateEntry(-1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("0x%016X %d\n", e.Hi, e.BiasedE2)
	// Output:
	// 0xCCCCCCCCCCCCCCCC 1083
}
