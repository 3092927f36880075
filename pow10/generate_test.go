// SPDX-License-Identifier: MIT

package pow10_test

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elfloat/pow10"
)

// TestGenerateEntry_Range rejects exponents the generator cannot certify.
func TestGenerateEntry_Range(t *testing.T) {
	for _, e10 := range []int{401, -401, 10000} {
		_, err := pow10.GenerateEntry(e10)
		assert.ErrorIs(t, err, pow10.ErrExp10Range, "1e%d", e10)
	}

	for _, e10 := range []int{400, -400, 0} {
		_, err := pow10.GenerateEntry(e10)
		assert.NoError(t, err, "1e%d", e10)
	}
}

// TestGenerateEntry_ExactPowers checks powers of ten that fit in 128 bits
// exactly: the low bits below the value must be zero.
func TestGenerateEntry_ExactPowers(t *testing.T) {
	e, err := pow10.GenerateEntry(19)
	require.NoError(t, err)
	// 10^19 = 0x8AC7230489E80000 · 2^0, 64 significant bits.
	assert.Equal(t, uint64(0x8AC7230489E80000), e.Hi)
	assert.Equal(t, uint64(0), e.Lo)
	assert.Equal(t, int16(1087+63), e.BiasedE2)
}

// TestGenerate_EmptyRange rejects min > max.
func TestGenerate_EmptyRange(t *testing.T) {
	_, err := pow10.Generate(context.Background(), 5, 4)
	assert.ErrorIs(t, err, pow10.ErrEmptyRange)
}

// TestGenerate_PropagatesEntryError fails the whole run on one bad exponent.
func TestGenerate_PropagatesEntryError(t *testing.T) {
	entries, err := pow10.Generate(context.Background(), 390, 420)
	assert.ErrorIs(t, err, pow10.ErrExp10Range)
	assert.Nil(t, entries)
}

// TestGenerate_Cancelled stops when the context is already done.
func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := pow10.Generate(ctx, -10, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, entries)
}

// TestGenerate_Order checks that entries come back in exponent order.
func TestGenerate_Order(t *testing.T) {
	entries, err := pow10.Generate(context.Background(), -3, 3)
	require.NoError(t, err)
	require.Len(t, entries, 7)
	for i, got := range entries {
		want, err := pow10.GenerateEntry(i - 3)
		require.NoError(t, err)
		assert.Equal(t, want, got, "1e%d", i-3)
	}
}

// TestWriteSource emits a small table and checks it is valid Go.
func TestWriteSource(t *testing.T) {
	entries, err := pow10.Generate(context.Background(), -1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pow10.WriteSource(&buf, "pow10", -1, entries))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// Code generated by genpow10; DO NOT EDIT.\n"))
	assert.Contains(t, src, "package pow10\n")
	assert.Contains(t, src, "const tableMinExp10 = -1\n")
	assert.Contains(t, src, "var table = [3]Entry{\n")
	assert.Contains(t, src, "{0xCCCCCCCCCCCCCCCC, 0xCCCCCCCCCCCCCCCC, 1083}, // 1e-1\n")
	assert.Contains(t, src, "{0x8000000000000000, 0x0000000000000000, 1087}, // 1e0\n")

	_, err = parser.ParseFile(token.NewFileSet(), "table_gen.go", src, parser.ParseComments)
	assert.NoError(t, err, "generated source must parse")
}

// TestWriteSource_Empty refuses to emit an empty table.
func TestWriteSource_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := pow10.WriteSource(&buf, "pow10", 0, nil)
	assert.ErrorIs(t, err, pow10.ErrEmptyRange)
	assert.Zero(t, buf.Len())
}
