// SPDX-License-Identifier: MIT

package tile

import "errors"

var (
	// ErrInvalidTileSize indicates a non-positive tile size, or one that does
	// not evenly divide the parent dimension.
	ErrInvalidTileSize = errors.New("tile: tile size must be > 0 and divide the matrix size")

	// ErrRange indicates a block coordinate whose tile would extend past the
	// parent matrix.
	ErrRange = errors.New("tile: block coordinate out of range")

	// ErrInconsistentTileSize indicates a grid that cannot be merged: tiles of
	// different sizes, a nil tile, or a non-square grid.
	ErrInconsistentTileSize = errors.New("tile: inconsistent tile sizes in grid")

	// ErrEmptyGrid indicates a grid with no tiles.
	ErrEmptyGrid = errors.New("tile: empty grid")
)
