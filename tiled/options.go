// SPDX-License-Identifier: MIT

// Package tiled: functional configuration for Run/Multiply.
//
// Design goals:
//   - Deterministic results: every mode produces bit-identical output.
//   - No global state; each call gathers its own Options.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error). User-facing strings go through ParseX first.
package tiled

import (
	"log/slog"

	"github.com/katalvlaran/mtxmult/matrix"
	"github.com/katalvlaran/mtxmult/workerpool"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MinDimension is the smallest accepted operand dimension.
	MinDimension = 4

	// DefaultSchedule keeps the per-output-tile barrier of the classic
	// benchmark so timings stay comparable.
	DefaultSchedule = Grouped

	// DefaultAccumulation avoids shared writes altogether.
	DefaultAccumulation = PrivateReduce

	// DefaultExecutor bounds concurrency with a persistent pool.
	DefaultExecutor = Pooled

	// DefaultWorkers of 0 means GOMAXPROCS.
	DefaultWorkers = 0
)

const (
	panicScheduleInvalid     = "tiled: WithSchedule: unknown schedule"
	panicAccumulationInvalid = "tiled: WithAccumulation: unknown accumulation"
	panicExecutorInvalid     = "tiled: WithExecutor: unknown executor"
)

// kernelFunc computes c += a × b for one (output, contraction) tile triple.
type kernelFunc func(c, a, b *matrix.Dense) error

func addMultiply(c, a, b *matrix.Dense) error { return c.AddMultiply(a, b) }

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved configuration of one call.
// Fields are unexported; build it through Option values.
type Options struct {
	schedule     Schedule
	accumulation Accumulation
	executor     Executor
	workers      int
	pool         *workerpool.Pool
	onGroupDone  func(bi, bj int)
	logger       *slog.Logger
	kernel       kernelFunc
}

func defaultOptions() Options {
	return Options{
		schedule:     DefaultSchedule,
		accumulation: DefaultAccumulation,
		executor:     DefaultExecutor,
		workers:      DefaultWorkers,
		logger:       slog.New(slog.DiscardHandler),
		kernel:       addMultiply,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSchedule selects Grouped or FullGrid.
func WithSchedule(s Schedule) Option {
	if !s.valid() {
		panic(panicScheduleInvalid)
	}

	return func(o *Options) { o.schedule = s }
}

// WithAccumulation selects PrivateReduce or LockedTile.
func WithAccumulation(a Accumulation) Option {
	if !a.valid() {
		panic(panicAccumulationInvalid)
	}

	return func(o *Options) { o.accumulation = a }
}

// WithExecutor selects Pooled or SpawnPerTask.
func WithExecutor(e Executor) Option {
	if !e.valid() {
		panic(panicExecutorInvalid)
	}

	return func(o *Options) { o.executor = e }
}

// WithWorkers sets the size of the call-scoped pool (<=0 means GOMAXPROCS).
// Ignored by SpawnPerTask and when WithPool supplies a pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithPool runs Pooled tasks on a caller-owned pool instead of a call-scoped
// one. The caller keeps ownership and must Close it.
func WithPool(p *workerpool.Pool) Option {
	return func(o *Options) { o.pool = p }
}

// WithOnGroupDone installs a hook called on the orchestrating goroutine once
// per output tile, after its partial products have been accumulated.
func WithOnGroupDone(fn func(bi, bj int)) Option {
	return func(o *Options) { o.onGroupDone = fn }
}

// WithLogger enables debug tracing of dispatch and barrier events.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
