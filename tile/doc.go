// SPDX-License-Identifier: MIT

// Package tile partitions a square matrix into a grid of equally sized
// square tiles and reassembles such a grid back into one matrix.
//
// A matrix of dimension n sliced with tile size s yields a g×g Grid with
// g = n/s; tile (bi, bj) holds the s×s block whose top-left corner is
// (bi·s, bj·s) in the parent. Tiles are owned copies, never views, so
// concurrent workers may read input tiles and write output tiles without
// aliasing the parent matrix.
//
//	parent (n=4, s=2)        grid (g=2)
//	┌───────┬───────┐        [0][0] [0][1]
//	│ a b   │ c d   │        [1][0] [1][1]
//	│ e f   │ g h   │
//	├───────┼───────┤
//	│ ...   │ ...   │
//	└───────┴───────┘
//
// Merge(SliceAll(m, s)) reproduces m exactly whenever s divides n.
package tile
