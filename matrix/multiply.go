// SPDX-License-Identifier: MIT

// Package matrix: the three multiplication strategies under comparison.
//
// All variants share one mathematical contract: given a (r×n) and
// b (n×c), produce a freshly allocated c = a×b (r×c) with
// c[i,j] = Σ_k a[i,k]*b[k,j], accumulated in ascending k order. The
// fixed accumulation order is load-bearing: under IEEE-754 it makes the
// serial, per-row and pooled results bit-identical, which the
// equivalence tests assert with exact comparison.
//
// They differ only in execution:
//   - MulSerial — single goroutine, i→j→k triple loop.
//   - MulAsync  — one goroutine per output row, WaitGroup join.
//   - MulPool   — N workers over static contiguous row chunks.
//
// Each parallel unit computes whole rows and writes through its own
// disjoint row stripe of the result, so the absence of write conflicts
// is structural, not incidental. Inputs are only read. Once
// spawned, all units run to completion; there is no cancellation.

package matrix

import (
	"fmt"
	"sync"
)

// Operation name constants for unified error wrapping.
const (
	opMulSerial = "MulSerial"
	opMulAsync  = "MulAsync"
	opMulPool   = "MulPool"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulPrepare runs the shared fail-fast validation and allocates the
// result container. Every variant goes through here so all three fail
// identically, before any computation begins.
func mulPrepare[T Real](tag string, a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// mulRowInto computes one output row: dst[j] = Σ_k a[i,k]*b[k,j] for all
// j, with k ascending into a local accumulator. dst must be the row view
// res.Row(i) of length b.Cols(); the caller owns it exclusively.
// This is the single inner kernel shared by all three strategies.
func mulRowInto[T Real](a, b *Dense[T], i int, dst []T) {
	inner := a.c // == b.r, validated upstream
	cols := b.c
	rowA := a.data[i*inner : (i+1)*inner]

	var j, k int
	var sum T
	for j = 0; j < cols; j++ {
		sum = 0
		for k = 0; k < inner; k++ { // ascending k: fixed accumulation order
			sum += rowA[k] * b.data[k*cols+j]
		}
		dst[j] = sum
	}
}

// MulSerial computes a×b with the baseline triple loop on the calling
// goroutine.
// Errors: ErrNilMatrix, ErrDimensionMismatch (before any work).
// Complexity: O(r*n*c) time, O(r*c) space for the result.
func MulSerial[T Real](a, b *Dense[T]) (*Dense[T], error) {
	res, err := mulPrepare(opMulSerial, a, b)
	if err != nil {
		return nil, err
	}

	for i := 0; i < res.r; i++ {
		mulRowInto(a, b, i, res.data[i*res.c:(i+1)*res.c])
	}

	return res, nil
}

// MulAsync computes a×b by spawning one goroutine per output row —
// a.Rows() concurrently schedulable units against read-only inputs —
// then blocking until every row task has completed. Each task writes
// exclusively to its own disjoint row of the result, so no
// synchronization exists beyond the final join.
// Numerically identical to MulSerial: each row's inner computation is
// sequential with the same accumulation order.
// Errors: ErrNilMatrix, ErrDimensionMismatch (before any goroutine starts).
// Complexity: O(r*n*c) work, O(r) goroutines.
func MulAsync[T Real](a, b *Dense[T]) (*Dense[T], error) {
	res, err := mulPrepare(opMulAsync, a, b)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(res.r)
	for i := 0; i < res.r; i++ {
		dst := res.data[i*res.c : (i+1)*res.c] // this task's exclusive stripe
		go func(i int, dst []T) {
			defer wg.Done()
			mulRowInto(a, b, i, dst)
		}(i, dst)
	}
	wg.Wait()

	return res, nil
}

// MulPool computes a×b with a fixed number of workers, each assigned one
// contiguous row chunk up front (static partitioning, no work stealing).
// The pool size defaults to the available hardware concurrency and can
// be pinned with WithWorkers; chunk sizes follow partitionRows: they
// differ by at most one row, earlier chunks carrying the surplus. All
// workers are spawned eagerly and joined before return.
// Numerically identical to MulSerial, same reasoning as MulAsync.
// Errors: ErrNilMatrix, ErrDimensionMismatch (before any goroutine starts).
// Complexity: O(r*n*c) work, O(N) goroutines.
func MulPool[T Real](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	res, err := mulPrepare(opMulPool, a, b)
	if err != nil {
		return nil, err
	}

	workers := gatherOptions(opts...).resolveWorkers()
	chunks := partitionRows(res.r, workers)

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, chunk := range chunks {
		go func(chunk rowRange) {
			defer wg.Done()
			for i := chunk.Start; i < chunk.End; i++ {
				mulRowInto(a, b, i, res.data[i*res.c:(i+1)*res.c])
			}
		}(chunk)
	}
	wg.Wait()

	return res, nil
}
