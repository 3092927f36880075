// SPDX-License-Identifier: MIT

package pow10

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
	mask64 = new(big.Int).SetUint64(^uint64(0))
)

// EstimateBiasedE2 returns ⌊e10 · log2(10)⌋ + 1087 computed in 16.16 fixed
// point, an estimate independent of the big-integer computation.
func EstimateBiasedE2(e10 int) int {
	return (estimateMul*e10)>>16 + estimateOffset
}

// GenerateEntry computes the Entry for 10^e10.
//
// Steps:
//  1. z = 2^Precision · 10^|e10|, or ⌊2^Precision / 10^|e10|⌋ for e10 < 0.
//  2. Shift z down to 128 significant bits; e2 = shifts − Precision.
//  3. Verify the 128-bit width and BiasedE2 == EstimateBiasedE2(e10).
//
// Errors: ErrExp10Range, ErrDivideByZero, ErrBitLength, ErrSelfCheck.
func GenerateEntry(e10 int) (Entry, error) {
	if e10 < -maxAbsExp10 || e10 > maxAbsExp10 {
		return Entry{}, fmt.Errorf("%w: 1e%d not in [-%d, %d]", ErrExp10Range, e10, maxAbsExp10, maxAbsExp10)
	}

	abs := e10
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(abs)), nil)

	z := new(big.Int).Lsh(bigOne, Precision)
	if e10 >= 0 {
		z.Mul(z, p)
	} else {
		if p.Sign() == 0 {
			return Entry{}, fmt.Errorf("%w: 1e%d", ErrDivideByZero, e10)
		}
		// Truncating: the entry under-estimates 10^e10.
		z.Quo(z, p)
	}

	e2 := -Precision
	if shift := z.BitLen() - 128; shift > 0 {
		z.Rsh(z, uint(shift))
		e2 += shift
	}
	if z.BitLen() != 128 {
		return Entry{}, fmt.Errorf("%w: 1e%d has %d bits", ErrBitLength, e10, z.BitLen())
	}

	biased := e2 + Bias
	if est := EstimateBiasedE2(e10); est != biased {
		return Entry{}, fmt.Errorf("%w: 1e%d: estimate %d, computed %d", ErrSelfCheck, e10, est, biased)
	}

	lo := new(big.Int).And(z, mask64).Uint64()
	hi := new(big.Int).Rsh(z, 64).Uint64()

	return Entry{Hi: hi, Lo: lo, BiasedE2: int16(biased)}, nil
}

// Generate computes the entries for every e10 in [minExp10, maxExp10], in
// order. Entries are computed concurrently on up to GOMAXPROCS goroutines;
// the first failure cancels the rest and is returned with a nil table.
func Generate(ctx context.Context, minExp10, maxExp10 int) ([]Entry, error) {
	if minExp10 > maxExp10 {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, minExp10, maxExp10)
	}

	entries := make([]Entry, maxExp10-minExp10+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range entries {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := GenerateEntry(minExp10 + i)
			if err != nil {
				return err
			}
			entries[i] = e

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
