// SPDX-License-Identifier: MIT

package pow10_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/elfloat/pow10"
)

// BenchmarkLookup measures the O(1) table access.
func BenchmarkLookup(b *testing.B) {
	var sink pow10.Entry
	for i := 0; i < b.N; i++ {
		e, _ := pow10.Lookup(i%pow10.Len() + pow10.MinExp10)
		sink = e
	}
	_ = sink
}

// BenchmarkGenerateEntry measures one big-integer entry computation.
func BenchmarkGenerateEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pow10.GenerateEntry(-300); err != nil {
			b.Fatalf("GenerateEntry failed: %v", err)
		}
	}
}

// BenchmarkGenerate measures a full table build.
func BenchmarkGenerate(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := pow10.Generate(ctx, pow10.MinExp10, pow10.MaxExp10); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
