// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/mtxmult/matrix"
)

// Grid is a square grid of tiles indexed [bi][bj].
type Grid [][]*matrix.Dense

// Width returns the number of tiles per side (g = n/s).
func (g Grid) Width() int { return len(g) }

// TileSize returns the dimension of tile (0,0), or 0 for an empty grid.
// It does not check that the remaining tiles agree; Merge does.
func (g Grid) TileSize() int {
	if len(g) == 0 || len(g[0]) == 0 || g[0][0] == nil {
		return 0
	}

	return g[0][0].Size()
}

// NewGrid allocates a width×width grid of zeroed s×s tiles. It is the
// accumulation target of a tiled multiply.
//
// Errors:
//   - ErrInvalidTileSize if width <= 0 or s <= 0.
//   - matrix.ErrInvalidDimensions if an s×s tile cannot be allocated.
//
// Complexity:
//   - Time O(width²·s²), Space O(width²·s²).
func NewGrid(width, s int) (Grid, error) {
	if width <= 0 || s <= 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", width, s, ErrInvalidTileSize)
	}
	zero, err := matrix.NewDense(s)
	if err != nil {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", width, s, err)
	}

	return lo.Times(width, func(_ int) []*matrix.Dense {
		return lo.Times(width, func(_ int) *matrix.Dense { return zero.Clone() })
	}), nil
}

// Slice extracts the s×s tile whose top-left corner is (bi·s, bj·s).
//
// Errors:
//   - ErrInvalidTileSize if s <= 0.
//   - ErrRange if bi or bj is negative, or (bi+1)·s or (bj+1)·s exceeds n.
//   - matrix.ErrNilMatrix if m is nil.
//
// Complexity:
//   - Time O(s²), Space O(s²).
func Slice(m *matrix.Dense, bi, bj, s int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Slice(%d,%d,%d): %w", bi, bj, s, err)
	}
	if s <= 0 {
		return nil, fmt.Errorf("Slice(%d,%d,%d): %w", bi, bj, s, ErrInvalidTileSize)
	}
	n := m.Size()
	if bi < 0 || bj < 0 || (bi+1)*s > n || (bj+1)*s > n {
		return nil, fmt.Errorf("Slice(%d,%d,%d) of %dx%d: %w", bi, bj, s, n, n, ErrRange)
	}

	t, err := m.Block(bi*s, bj*s, s)
	if err != nil {
		return nil, fmt.Errorf("Slice(%d,%d,%d): %w", bi, bj, s, err)
	}

	return t, nil
}

// SliceAll produces the full (n/s)×(n/s) grid of m by repeated Slice.
//
// Errors:
//   - ErrInvalidTileSize if s <= 0 or n % s != 0.
//   - matrix.ErrNilMatrix if m is nil.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func SliceAll(m *matrix.Dense, s int) (Grid, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SliceAll(%d): %w", s, err)
	}
	n := m.Size()
	if s <= 0 || n%s != 0 {
		return nil, fmt.Errorf("SliceAll(%d) of %dx%d: %w", s, n, n, ErrInvalidTileSize)
	}

	g := n / s
	grid := make(Grid, g)
	for bi := 0; bi < g; bi++ {
		grid[bi] = make([]*matrix.Dense, g)
		for bj := 0; bj < g; bj++ {
			t, err := Slice(m, bi, bj, s)
			if err != nil {
				return nil, fmt.Errorf("SliceAll: %w", err)
			}
			grid[bi][bj] = t
		}
	}

	return grid, nil
}

// Validate checks that grid is non-empty, square, free of nil tiles and that
// every tile has the same size. It returns that common tile size.
//
// Errors:
//   - ErrEmptyGrid, ErrInconsistentTileSize.
func Validate(grid Grid) (int, error) {
	g := len(grid)
	if g == 0 {
		return 0, ErrEmptyGrid
	}
	s := grid.TileSize()
	if s == 0 {
		return 0, fmt.Errorf("tile (0,0) missing: %w", ErrInconsistentTileSize)
	}
	for bi, row := range grid {
		if len(row) != g {
			return 0, fmt.Errorf("row %d has %d tiles, want %d: %w", bi, len(row), g, ErrInconsistentTileSize)
		}
		for bj, t := range row {
			if t == nil {
				return 0, fmt.Errorf("tile (%d,%d) is nil: %w", bi, bj, ErrInconsistentTileSize)
			}
			if t.Size() != s {
				return 0, fmt.Errorf("tile (%d,%d) is %dx%d, want %dx%d: %w", bi, bj, t.Size(), t.Size(), s, s, ErrInconsistentTileSize)
			}
		}
	}

	return s, nil
}

// Merge is the inverse of SliceAll: it reconstructs the n×n matrix, with
// n = grid width × tile size, by copying each tile to its offset.
//
// Errors:
//   - ErrEmptyGrid, ErrInconsistentTileSize (see Validate).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Merge(grid Grid) (*matrix.Dense, error) {
	s, err := Validate(grid)
	if err != nil {
		return nil, fmt.Errorf("Merge: %w", err)
	}

	g := grid.Width()
	out, err := matrix.NewDense(g * s)
	if err != nil {
		return nil, fmt.Errorf("Merge: %w", err)
	}
	for bi, row := range grid {
		for bj, t := range row {
			if err = out.SetBlock(bi*s, bj*s, t); err != nil {
				return nil, fmt.Errorf("Merge: tile (%d,%d): %w", bi, bj, err)
			}
		}
	}

	return out, nil
}
