// SPDX-License-Identifier: MIT

package pow10

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
)

// WriteSource writes a gofmt'ed Go file declaring tableMinExp10 and table
// for the given entries, the first of which is 10^minExp10. This is the
// format of table_gen.go.
func WriteSource(w io.Writer, pkg string, minExp10 int, entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyRange
	}
	maxExp10 := minExp10 + len(entries) - 1

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by genpow10; DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&buf, "// tableMinExp10 is the decimal exponent of table[0].\nconst tableMinExp10 = %d\n\n", minExp10)
	fmt.Fprintf(&buf, "// table holds 10^e10 as a truncated 128-bit significand and biased binary\n"+
		"// exponent for e10 in [%d, %d], indexed by e10-tableMinExp10.\n", minExp10, maxExp10)
	fmt.Fprintf(&buf, "var table = [%d]Entry{\n", len(entries))
	for i, e := range entries {
		fmt.Fprintf(&buf, "\t{0x%016X, 0x%016X, %d}, // 1e%d\n", e.Hi, e.Lo, e.BiasedE2, minExp10+i)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("pow10: format generated source: %w", err)
	}
	_, err = w.Write(src)

	return err
}
