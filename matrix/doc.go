// SPDX-License-Identifier: MIT

// Package matrix provides the square integer matrix buffer used by the
// single-threaded and tiled multiplication benchmarks.
//
// The matrix package provides:
//
//   - Dense: an n×n grid of int64 values in one flat row-major buffer.
//   - Fill policies (zeros, ones, uniform random in [0, MaxRandom)).
//   - A whitespace-delimited text format (Parse / Render) for tests and display.
//   - Multiply: the reference O(n³) i→j→k triple loop into a fresh matrix.
//   - AddMultiply: the same loop accumulating into an existing matrix, which is
//     what lets partial tile products from different contraction indices be
//     summed into one output tile.
//   - Block / SetBlock: copy-based sub-block extraction and write-back used by
//     the tile partitioner.
//
// Public methods never panic on user input; they return the sentinels in
// errors.go, wrapped with call-site context. Match them with errors.Is.
//
// Dense is not safe for concurrent mutation. Concurrent readers are fine as
// long as nobody writes; the tiled orchestrator relies on that for its input
// tiles.
package matrix
