// SPDX-License-Identifier: MIT

package tiled

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mtxmult/matrix"
	"github.com/katalvlaran/mtxmult/tile"
	"github.com/katalvlaran/mtxmult/workerpool"
)

// Result is the output of Run.
type Result struct {
	C     *matrix.Dense
	Stats Stats
}

// Validate checks the (n, s) pair before any work starts.
//
// Errors:
//   - ErrInvalidParameters if n < MinDimension, s <= 0 or n % s != 0.
func Validate(n, s int) error {
	if n < MinDimension {
		return fmt.Errorf("n=%d is below the minimum %d: %w", n, MinDimension, ErrInvalidParameters)
	}
	if s <= 0 {
		return fmt.Errorf("s=%d must be positive: %w", s, ErrInvalidParameters)
	}
	if n%s != 0 {
		return fmt.Errorf("s=%d does not divide n=%d: %w", s, n, ErrInvalidParameters)
	}

	return nil
}

// Multiply computes C = A × B by splitting both operands into s×s tiles and
// running one task per (output tile, contraction index) pair. The result is
// identical to matrix.Multiply(a, b).
//
// See Run for errors and options.
func Multiply(ctx context.Context, a, b *matrix.Dense, s int, opts ...Option) (*matrix.Dense, error) {
	res, err := Run(ctx, a, b, s, opts...)
	if err != nil {
		return nil, err
	}

	return res.C, nil
}

// Run is Multiply that also reports what was executed.
//
// Pipeline:
//  1. Validate operands and (n, s); nothing is sliced or spawned on failure.
//  2. Slice A and B into g×g grids (g = n/s) and allocate a zeroed C grid.
//  3. For every output tile (i, j) dispatch g tasks, task k computing the
//     partial product A[i][k] × B[k][j]; join on the group barrier.
//  4. Accumulate the partials into C[i][j] (see Accumulation).
//  5. Merge the C grid into the n×n result.
//
// With the Grouped schedule step 3/4 repeat per output tile; with FullGrid
// all g³ tasks share one barrier.
//
// Errors:
//   - ErrInvalidParameters for rejected input.
//   - ErrWorkerFailed wrapping the first task error or recovered panic.
//   - ctx.Err() if ctx is done before or between groups.
//
// Complexity:
//   - Time O(n³) work.
//   - Space O(n²) for the operand grids and the result, plus the live
//     partial tiles: g·s² = n·s cells for Grouped+PrivateReduce,
//     at most w·g·s² with w = max(2, ⌈2·workers/g⌉) groups in flight for
//     FullGrid+PrivateReduce, and one s×s tile per running task for
//     LockedTile.
func Run(ctx context.Context, a, b *matrix.Dense, s int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("tiled.Run: %w: %w", ErrInvalidParameters, err)
	}
	n := a.Size()
	if err := Validate(n, s); err != nil {
		return nil, fmt.Errorf("tiled.Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// step 1: slice each operand
	ga, err := tile.SliceAll(a, s)
	if err != nil {
		return nil, fmt.Errorf("tiled.Run: slice A: %w", err)
	}
	gb, err := tile.SliceAll(b, s)
	if err != nil {
		return nil, fmt.Errorf("tiled.Run: slice B: %w", err)
	}

	// step 2: allocate the zeroed output grid
	g := n / s
	gc, err := tile.NewGrid(g, s)
	if err != nil {
		return nil, fmt.Errorf("tiled.Run: %w", err)
	}

	r := newRunner(ctx, o, ga, gb, gc)
	defer r.close()

	o.logger.Debug("tiled multiply",
		"n", n, "s", s, "grid", g,
		"schedule", o.schedule, "accumulation", o.accumulation, "executor", o.executor)

	// step 3-4: multiply the tiles in parallel
	switch o.schedule {
	case FullGrid:
		err = r.fullGrid()
	default:
		err = r.grouped()
	}
	if err != nil {
		return nil, err
	}

	// step 5: merge the tiles into the result
	c, err := tile.Merge(gc)
	if err != nil {
		return nil, fmt.Errorf("tiled.Run: %w", err)
	}
	r.stats.GridWidth = g
	r.stats.PeakPartials = int(r.peak.Load())

	return &Result{C: c, Stats: r.stats}, nil
}

// batch is a counted barrier with first-error semantics; it is satisfied by
// *workerpool.Batch and *spawnBatch. Aborted is closed once a task fails.
type batch interface {
	Go(fn func() error)
	Wait() error
	Aborted() <-chan struct{}
}

// spawnBatch starts one goroutine per task through errgroup. Tasks that have
// not started when a sibling fails observe the group context and bail out.
type spawnBatch struct {
	eg  *errgroup.Group
	ctx context.Context
}

func newSpawnBatch(ctx context.Context) *spawnBatch {
	eg, gctx := errgroup.WithContext(ctx)

	return &spawnBatch{eg: eg, ctx: gctx}
}

func (b *spawnBatch) Go(fn func() error) {
	b.eg.Go(func() error {
		if err := b.ctx.Err(); err != nil {
			return err
		}

		return workerpool.Safe(fn)
	})
}

func (b *spawnBatch) Wait() error { return b.eg.Wait() }

func (b *spawnBatch) Aborted() <-chan struct{} { return b.ctx.Done() }

// group is the set of g tasks producing output tile (bi, bj).
type group struct {
	bi, bj int

	// partials[k] is written by task k under PrivateReduce; nil under LockedTile.
	partials []*matrix.Dense

	// pending counts unfinished tasks when the last one to finish reduces
	// the group (FullGrid); it stays zero when the orchestrator reduces.
	pending atomic.Int32

	// onReduced runs after the eager reduction, releasing a window slot.
	onReduced func()
}

// runner carries the per-call state of Run.
type runner struct {
	ctx      context.Context
	o        Options
	a, b, c  tile.Grid
	g, s     int
	pool     *workerpool.Pool
	ownsPool bool
	locks    [][]sync.Mutex // one per output tile, used by LockedTile
	stats    Stats

	live, peak atomic.Int64 // partial tiles currently allocated, and the maximum
}

func newRunner(ctx context.Context, o Options, a, b, c tile.Grid) *runner {
	r := &runner{ctx: ctx, o: o, a: a, b: b, c: c, g: c.Width(), s: c.TileSize()}

	if o.executor == Pooled {
		r.pool = o.pool
		if r.pool == nil {
			r.pool = workerpool.New(o.workers)
			r.ownsPool = true
		}
		r.stats.Workers = r.pool.Size()
	}
	if o.accumulation == LockedTile {
		r.locks = make([][]sync.Mutex, r.g)
		for i := range r.locks {
			r.locks[i] = make([]sync.Mutex, r.g)
		}
	}

	return r
}

func (r *runner) close() {
	if r.ownsPool {
		r.pool.Close()
	}
}

func (r *runner) newBatch(tasks int) batch {
	r.stats.Barriers++
	if r.pool != nil {
		return r.pool.NewBatch()
	}
	r.stats.Workers = max(r.stats.Workers, tasks)

	return newSpawnBatch(r.ctx)
}

// track adjusts the live partial count by delta and records a new peak.
func (r *runner) track(delta int) {
	v := r.live.Add(int64(delta))
	for {
		p := r.peak.Load()
		if v <= p || r.peak.CompareAndSwap(p, v) {
			return
		}
	}
}

func (r *runner) newGroup(bi, bj int) *group {
	grp := &group{bi: bi, bj: bj}
	if r.o.accumulation == PrivateReduce {
		grp.partials = make([]*matrix.Dense, r.g)
	}

	return grp
}

// grouped runs the g² output tiles one at a time, each behind its own barrier.
func (r *runner) grouped() error {
	for bi := 0; bi < r.g; bi++ {
		for bj := 0; bj < r.g; bj++ {
			if err := r.ctx.Err(); err != nil {
				return err
			}

			bt := r.newBatch(r.g)
			grp := r.newGroup(bi, bj)
			r.dispatch(bt, grp)
			r.o.logger.Debug("group dispatched", "bi", bi, "bj", bj, "tasks", r.g)
			if err := bt.Wait(); err != nil {
				return r.failure(err, fmt.Sprintf("group (%d,%d)", bi, bj))
			}
			if grp.partials != nil {
				if err := reduce(r.c[bi][bj], grp.partials); err != nil {
					return fmt.Errorf("tiled: reduce (%d,%d): %w", bi, bj, err)
				}
				r.track(-r.g)
			}
			r.o.logger.Debug("group released", "bi", bi, "bj", bj)
			r.groupDone(bi, bj)
		}
	}

	return nil
}

// fullGrid dispatches every task of every output tile behind one barrier.
// Output tiles are disjoint per group, so no ordering between groups is needed.
//
// Under PrivateReduce the last task of a group to finish reduces it and drops
// its partials, and at most window() groups are dispatched but unreduced at
// any time, which bounds the live partials to window()·g tiles.
func (r *runner) fullGrid() error {
	bt := r.newBatch(r.g * r.g * r.g)

	var slots chan struct{}
	if r.o.accumulation == PrivateReduce {
		slots = make(chan struct{}, r.window())
	}

	dispatched := 0
groups:
	for bi := 0; bi < r.g; bi++ {
		for bj := 0; bj < r.g; bj++ {
			grp := r.newGroup(bi, bj)
			if slots != nil {
				select {
				case slots <- struct{}{}:
				case <-bt.Aborted():
					break groups
				case <-r.ctx.Done():
					break groups
				}
				grp.pending.Store(int32(r.g))
				grp.onReduced = func() { <-slots }
			}
			r.dispatch(bt, grp)
			dispatched++
		}
	}
	r.o.logger.Debug("grid dispatched", "groups", dispatched, "tasks", r.stats.Tasks)
	if err := bt.Wait(); err != nil {
		return r.failure(err, "grid")
	}
	if dispatched < r.g*r.g {
		// stopped early with every dispatched task succeeding: only the
		// caller's cancellation gets here
		if err := r.ctx.Err(); err != nil {
			return err
		}

		return fmt.Errorf("%w: grid: dispatch aborted", ErrWorkerFailed)
	}

	for bi := 0; bi < r.g; bi++ {
		for bj := 0; bj < r.g; bj++ {
			r.groupDone(bi, bj)
		}
	}

	return nil
}

// window is the number of FullGrid groups allowed in flight: enough tasks to
// keep every worker busy twice over, and never fewer than two groups.
func (r *runner) window() int {
	workers := runtime.GOMAXPROCS(0)
	if r.pool != nil {
		workers = r.pool.Size()
	}

	return max(2, (2*workers+r.g-1)/r.g)
}

// dispatch submits the g tasks of grp to bt.
func (r *runner) dispatch(bt batch, grp *group) {
	for k := 0; k < r.g; k++ {
		r.stats.Tasks++
		bt.Go(func() error { return r.task(grp, k) })
	}
}

// task computes partial product k of grp and accumulates it according to
// the accumulation mode.
func (r *runner) task(grp *group, k int) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	bi, bj := grp.bi, grp.bj
	partial, err := matrix.NewDense(r.s)
	if err != nil {
		return err
	}
	r.track(1)
	if err = r.o.kernel(partial, r.a[bi][k], r.b[k][bj]); err != nil {
		r.track(-1)
		return fmt.Errorf("tile (%d,%d) k=%d: %w", bi, bj, k, err)
	}

	if grp.partials == nil {
		defer r.track(-1)
		mu := &r.locks[bi][bj]
		mu.Lock()
		defer mu.Unlock()

		return r.c[bi][bj].Add(partial)
	}

	grp.partials[k] = partial
	if grp.onReduced == nil || grp.pending.Add(-1) != 0 {
		return nil
	}
	// last finisher: every partials[k] write happened before its Add(-1)
	defer grp.onReduced()
	err = reduce(r.c[bi][bj], grp.partials)
	clear(grp.partials)
	r.track(-r.g)
	if err != nil {
		return fmt.Errorf("tiled: reduce (%d,%d): %w", bi, bj, err)
	}

	return nil
}

// reduce adds partials into dst in k order.
func reduce(dst *matrix.Dense, partials []*matrix.Dense) error {
	for _, p := range partials {
		if err := dst.Add(p); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) groupDone(bi, bj int) {
	r.stats.Groups++
	if r.o.onGroupDone != nil {
		r.o.onGroupDone(bi, bj)
	}
}

// failure maps a barrier error to the caller-facing error: the caller's own
// cancellation is returned as is, anything else is a worker failure.
func (r *runner) failure(err error, where string) error {
	if cerr := r.ctx.Err(); cerr != nil {
		return cerr
	}
	r.o.logger.Debug("barrier failed", "where", where, "err", err)

	return fmt.Errorf("%w: %s: %w", ErrWorkerFailed, where, err)
}
