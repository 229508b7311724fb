// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for nil/shape checks shared by the kernels.
//   - Return sentinel errors wrapped with the validator tag so callers can match
//     them with errors.Is.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b have the same dimension.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameSize(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → SameSize.
// Square operands are conformable exactly when their sizes agree.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}

	return nil
}
