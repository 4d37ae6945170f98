// SPDX-License-Identifier: MIT
// Package matrix: single, canonical source of truth for validation checks.
// Kernels stay minimal by delegating nil/shape guards here; validators
// return plain sentinels wrapped with a stable tag so call sites match
// uniformly via errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Errors: ErrNilMatrix. Complexity: O(1).
func ValidateNotNil[T Real](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and conformable for
// the product a×b, i.e. a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible[T Real](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRange ensures a half-open randomization interval [min, max) is
// non-empty.
// Errors: ErrBadRange. Complexity: O(1).
func ValidateRange[T Real](min, max T) error {
	if min >= max {
		return validatorErrorf("ValidateRange", ErrBadRange)
	}

	return nil
}
