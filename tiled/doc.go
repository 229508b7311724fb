// SPDX-License-Identifier: MIT

// Package tiled multiplies square integer matrices by splitting them into
// s×s tiles and computing the partial tile products in parallel.
//
// For operands of dimension n and tile size s the grid width is g = n/s.
// Output tile C[i][j] is the sum over k of A[i][k] × B[k][j]; each of those
// g partial products is an independent task, and the g tasks of one output
// tile form a group that joins on a barrier.
//
// ⚙️ Modes:
//
//   - Schedule: Grouped (default) releases one output tile at a time, the
//     way the classic benchmark does; FullGrid puts all g³ tasks behind a
//     single barrier, reducing each output tile as soon as its g tasks are
//     done and keeping only a few groups in flight.
//   - Accumulation: PrivateReduce (default) gives every task its own partial
//     tile and sums them after the barrier; LockedTile adds each partial into
//     the shared output tile under a per-tile mutex.
//   - Executor: Pooled (default) runs tasks on a persistent bounded
//     workerpool.Pool; SpawnPerTask starts one goroutine per task.
//
// Every mode returns exactly matrix.Multiply(a, b).
//
// Usage:
//
//	c, err := tiled.Multiply(ctx, a, b, 64,
//	    tiled.WithSchedule(tiled.FullGrid),
//	    tiled.WithWorkers(runtime.NumCPU()))
//
// Requests with n < MinDimension or a tile size that does not divide n fail
// with ErrInvalidParameters before any tile is cut. A task error or panic
// fails the whole call with ErrWorkerFailed.
package tiled
