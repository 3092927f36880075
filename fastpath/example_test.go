// SPDX-License-Identifier: MIT

package fastpath_test

import (
	"fmt"

	"github.com/katalvlaran/elfloat/fastpath"
	"github.com/katalvlaran/elfloat/lexer"
)

// ExampleConvert converts one literal and shows an abstention.
func ExampleConvert() {
	m, _ := lexer.ParseManExp10("6.02214076e23")
	f, ok := fastpath.Convert(m)
	fmt.Println(f, ok)

	// Exactly halfway between 2^53 and 2^53+2.
	m, _ = lexer.ParseManExp10("9007199254740993")
	_, ok = fastpath.Convert(m)
	fmt.Println(ok)
	// Output:
	// 6.02214076e+23 true
	// false
}
