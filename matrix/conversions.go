// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// FromRows copies a nested slice into a new Dense. The input must be square
// and non-empty.
//
// Errors:
//   - ErrInvalidDimensions for empty input.
//   - ErrDimensionMismatch when a row length differs from the row count.
func FromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// ToRows returns a nested-slice copy of the matrix, one slice per row.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.n)
	for i := range out {
		out[i] = make([]int64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}
