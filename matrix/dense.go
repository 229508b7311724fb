// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support copy-based sub-block extraction (Block) so tiles never alias their parent.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Block/SetBlock: O(s²).

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// maxCells bounds n*n so that the byte size of the buffer is addressable:
// 2^44 cells on 64-bit platforms, MaxInt/8 on 32-bit ones.
const maxCells = min(math.MaxInt/8, 1<<44)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxBlock    = "Block"
	ctxSetBlock = "SetBlock"
	ctxFill     = "Fill"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square n×n matrix of int64 values.
//   - n holds the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int     // dimension
	data []int64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 < n and n*n <= maxCells; else ErrInvalidDimensions.
//     The bound is checked as n > maxCells/n so n*n is never computed on
//     an overflowing value.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 || n > maxCells/n {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrInvalidDimensions)
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// NewFilled allocates an n×n matrix and applies the given fill policy.
// FillRandom draws from the process-wide generator; use NewDense followed by
// FillRandomFrom for reproducible contents.
func NewFilled(n int, policy FillPolicy) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(policy); err != nil {
		return nil, err
	}

	return m, nil
}

// NewOnes allocates an all-ones n×n matrix.
func NewOnes(n int) (*Dense, error) { return NewFilled(n, FillOnes) }

// NewRandom allocates an n×n matrix with cells in [0, MaxRandom).
func NewRandom(n int) (*Dense, error) { return NewFilled(n, FillRandom) }

// Size returns the dimension n.
func (m *Dense) Size() int { return m.n }

// Rows returns the number of rows (== Size).
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns (== Size).
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if either index is outside [0, n).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange if either index is outside [0, n).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill overwrites every cell according to policy.
// FillRandom uses the process-wide math/rand/v2 generator.
// Returns ErrUnknownFill for policies outside the known set.
// Complexity: O(n²).
func (m *Dense) Fill(policy FillPolicy) error {
	switch policy {
	case FillZeros:
		clear(m.data)
	case FillOnes:
		for i := range m.data {
			m.data[i] = 1
		}
	case FillRandom:
		for i := range m.data {
			m.data[i] = rand.Int64N(MaxRandom)
		}
	default:
		return fmt.Errorf("Dense.%s(%v): %w", ctxFill, policy, ErrUnknownFill)
	}

	return nil
}

// FillRandomFrom overwrites every cell with a value in [0, MaxRandom) drawn
// from r. Two matrices filled from identically seeded generators are equal.
func (m *Dense) FillRandomFrom(r *rand.Rand) {
	for i := range m.data {
		m.data[i] = r.Int64N(MaxRandom)
	}
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	out := make([]int64, len(m.data))
	copy(out, m.data)

	return &Dense{n: m.n, data: out}
}

// Equal reports whether m and other have the same dimension and cells.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Block materializes a copy of the size×size sub-block whose top-left corner
// is (r0, c0). The result owns its storage; later writes to m do not leak
// into it and vice versa.
//
// Implementation:
//   - Stage 1: validate size>0 and that the window lies inside m.
//   - Stage 2: copy row segments with the built-in copy.
//
// Errors:
//   - ErrInvalidDimensions (size <= 0), ErrOutOfRange (window outside m).
//
// Complexity:
//   - Time O(size²), Space O(size²).
func (m *Dense) Block(r0, c0, size int) (*Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d): %w", ctxBlock, r0, c0, size, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+size > m.n || c0+size > m.n {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d): %w", ctxBlock, r0, c0, size, ErrOutOfRange)
	}

	out := &Dense{n: size, data: make([]int64, size*size)}
	for i := 0; i < size; i++ {
		src := (r0+i)*m.n + c0
		copy(out.data[i*size:(i+1)*size], m.data[src:src+size])
	}

	return out, nil
}

// SetBlock copies src into m so that src's (0,0) lands on m's (r0, c0).
// It is the inverse of Block for a single tile.
//
// Errors:
//   - ErrNilMatrix (src nil), ErrOutOfRange (src does not fit at (r0, c0)).
//
// Complexity:
//   - Time O(s²) where s = src.Size().
func (m *Dense) SetBlock(r0, c0 int, src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxSetBlock, r0, c0, ErrNilMatrix)
	}
	size := src.n
	if r0 < 0 || c0 < 0 || r0+size > m.n || c0+size > m.n {
		return fmt.Errorf("Dense.%s(%d,%d,%d): %w", ctxSetBlock, r0, c0, size, ErrOutOfRange)
	}
	for i := 0; i < size; i++ {
		dst := (r0+i)*m.n + c0
		copy(m.data[dst:dst+size], src.data[i*size:(i+1)*size])
	}

	return nil
}
