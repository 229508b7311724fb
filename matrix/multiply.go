// SPDX-License-Identifier: MIT

// Package matrix - multiplication kernels.
//
// Both kernels use the same fixed loop order: i (row of A) outer, j (column of
// B) middle, k (contraction) inner. The order is part of the benchmark's
// contract: single- and multi-threaded phases run the identical kernel so the
// measured speedup comes from tiling and parallelism alone.

package matrix

import "fmt"

const (
	opMultiply    = "Multiply"
	opAddMultiply = "AddMultiply"
	opAdd         = "Add"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply returns a new matrix C = A × B computed with the reference triple
// loop C[i][j] += A[i][k] * B[k][j] on a zeroed result.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a and b differ in size.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Multiply(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	c, err := NewDense(a.n)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	mulAccumulate(c.data, a.data, b.data, a.n)

	return c, nil
}

// AddMultiply accumulates A × B into the receiver: C[i][j] += A[i][k] * B[k][j].
// The existing contents of c are kept, so calling AddMultiply once per
// contraction tile sums the partial products of a tiled multiply.
//
// AddMultiply is not synchronized; concurrent calls on the same receiver lose
// updates. Callers sharing an output tile must serialize or reduce afterwards.
//
// Errors:
//   - ErrNilMatrix if c, a or b is nil.
//   - ErrDimensionMismatch if the three sizes differ.
//
// Complexity:
//   - Time O(n³), Space O(1).
func (c *Dense) AddMultiply(a, b *Dense) error {
	if c == nil {
		return matrixErrorf(opAddMultiply, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opAddMultiply, err)
	}
	if c.n != a.n {
		return matrixErrorf(opAddMultiply, fmt.Errorf("result %d vs operands %d: %w", c.n, a.n, ErrDimensionMismatch))
	}
	mulAccumulate(c.data, a.data, b.data, a.n)

	return nil
}

// Add accumulates other into the receiver element-wise: c[i][j] += other[i][j].
// Used to reduce private partial tiles into an output tile.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²) as one flat pass.
func (c *Dense) Add(other *Dense) error {
	if c == nil || other == nil {
		return matrixErrorf(opAdd, ErrNilMatrix)
	}
	if c.n != other.n {
		return matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	for i, v := range other.data {
		c.data[i] += v
	}

	return nil
}

// mulAccumulate is the shared i→j→k kernel over flat row-major buffers.
func mulAccumulate(c, a, b []int64, n int) {
	var sum int64
	for i := 0; i < n; i++ {
		rowA := a[i*n : (i+1)*n]
		rowC := c[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			sum = rowC[j]
			for k := 0; k < n; k++ {
				sum += rowA[k] * b[k*n+j]
			}
			rowC[j] = sum
		}
	}
}
