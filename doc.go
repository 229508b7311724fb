// SPDX-License-Identifier: MIT

// Package mtxmult is a benchmark harness comparing single-threaded and tiled
// multi-threaded multiplication of square integer matrices.
//
// 🚀 What is in the box?
//
//	• matrix/     — dense n×n int64 buffer, text format, reference product
//	• tile/       — cut a matrix into s×s owned tiles and stitch them back
//	• workerpool/ — persistent bounded pool with error-aware batches
//	• tiled/      — the parallel orchestrator (schedules, accumulation, executors)
//	• bench/      — run configuration, timing, verification and YAML reports
//	• cmd/mtxmult — the command line front end
//
// ✨ Guarantees:
//
//   - Every schedule, accumulation and executor returns exactly matrix.Multiply(a, b).
//   - Invalid (n, s) pairs are rejected before any tile is cut.
//   - A failing or panicking task fails the whole call; no partial result escapes.
//
// Quick start:
//
//	go run ./cmd/mtxmult 1024 128
//	go run ./cmd/mtxmult --schedule fullgrid --repeat 5 --report - 1024 128
package mtxmult
