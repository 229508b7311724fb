// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("Dense.<Method>(...): %w", ErrX).

var (
	// ErrInvalidDimensions indicates that a requested dimension is non-positive
	// or so large that n*n cells cannot be addressed.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Block/SetBlock MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. Multiply
	// of an n×n by an m×m matrix with n != m.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrFormat reports malformed textual matrix input: empty text, a row whose
	// token count differs from the row count, or a token that is not an integer.
	ErrFormat = errors.New("matrix: malformed matrix text")

	// ErrUnknownFill reports a fill policy outside the known set.
	ErrUnknownFill = errors.New("matrix: unknown fill policy")
)
