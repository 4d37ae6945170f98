// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions; panics are
// reserved for programmer errors in option constructors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Construction must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions for
	// multiplication: a.Cols() != b.Rows(). Raised by every Mul variant
	// before any computation begins; no partial result is ever produced.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadRange indicates an empty or inverted randomization interval
	// (min >= max).
	ErrBadRange = errors.New("matrix: invalid random range")

	// ErrNilRand indicates a nil *rand.Rand passed to a seeded fill.
	ErrNilRand = errors.New("matrix: nil random source")
)
