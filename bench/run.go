// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/mtxmult/matrix"
	"github.com/katalvlaran/mtxmult/tiled"
	"github.com/katalvlaran/mtxmult/workerpool"
)

// seedMix derives the second PCG word from the configured seed.
const seedMix = 0x9e3779b97f4a7c15

// Run times the single-threaded product against the tiled product of two
// generated n×n operands and writes the progress lines to out:
//
//	Parameters: n=8; s=4
//	Single-threaded multiplication...
//	Done! It took 0ms
//	Multi-threaded multiplication...
//	Done! It took 0ms
//	Speedup: n/a (8 tasks in 4 groups, 8 workers)
//
// With cfg.Display the operands and each result are printed as well. Each
// phase is repeated cfg.Repeat times. A Pooled executor reuses one pool for
// every repetition, so pool start-up is not part of the measured time.
//
// Errors:
//   - tiled.ErrInvalidParameters if cfg does not validate; nothing is printed.
//   - matrix.ErrInvalidDimensions if n*n cells cannot be allocated.
//   - ErrResultMismatch if cfg.Verify is set and the products differ.
//   - Any error of tiled.Run, or ctx.Err() on cancellation.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rep := &Report{Config: cfg, Host: DetectHost()}
	logger.Info("host",
		"os", rep.Host.OS, "arch", rep.Host.Arch,
		"cpus", rep.Host.CPUs, "gomaxprocs", rep.Host.MaxProcs,
		"features", rep.Host.Features)

	fmt.Fprintf(out, "Parameters: n=%d; s=%d\n", cfg.N, cfg.S)

	a, b, err := operands(cfg)
	if err != nil {
		return nil, fmt.Errorf("bench: operands: %w", err)
	}
	if cfg.Display {
		display(out, "Matrix A", a)
		display(out, "Matrix B", b)
	}

	// phase 1: single-threaded reference
	fmt.Fprintln(out, "Single-threaded multiplication...")
	var single *matrix.Dense
	singleRuns := make([]time.Duration, 0, cfg.Repeat)
	for i := 0; i < cfg.Repeat; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		single, err = matrix.Multiply(a, b)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("bench: single-threaded: %w", err)
		}
		singleRuns = append(singleRuns, elapsed)
		fmt.Fprintf(out, "Done! It took %dms\n", elapsed.Milliseconds())
		logger.Debug("single-threaded run", "repeat", i, "elapsed", elapsed)
	}
	if cfg.Display {
		display(out, "Matrix C", single)
	}

	// phase 2: tiled
	opts := cfg.TiledOptions(logger)
	if cfg.Executor == tiled.Pooled {
		pool := workerpool.New(cfg.Workers)
		defer pool.Close()
		opts = append(opts, tiled.WithPool(pool))
	}

	fmt.Fprintln(out, "Multi-threaded multiplication...")
	var res *tiled.Result
	tiledRuns := make([]time.Duration, 0, cfg.Repeat)
	for i := 0; i < cfg.Repeat; i++ {
		start := time.Now()
		res, err = tiled.Run(ctx, a, b, cfg.S, opts...)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		tiledRuns = append(tiledRuns, elapsed)
		fmt.Fprintf(out, "Done! It took %dms\n", elapsed.Milliseconds())
		logger.Debug("tiled run", "repeat", i, "elapsed", elapsed, "tasks", res.Stats.Tasks)
	}
	if cfg.Display {
		display(out, "Matrix C", res.C)
	}

	if cfg.Verify {
		if !single.Equal(res.C) {
			return nil, fmt.Errorf("bench: n=%d s=%d: %w", cfg.N, cfg.S, ErrResultMismatch)
		}
		rep.Verified = true
	}

	rep.Single = newPhase(singleRuns)
	rep.Tiled = newPhase(tiledRuns)
	rep.Stats = res.Stats
	rep.Speedup = speedup(rep.Single, rep.Tiled)
	if err = rep.WriteSummary(out); err != nil {
		return nil, err
	}
	logger.Info("benchmark done",
		"single_min", rep.Single.Min, "tiled_min", rep.Tiled.Min,
		"speedup", rep.Speedup, "verified", rep.Verified)

	return rep, nil
}

// operands builds A and B according to cfg.Fill. A non-zero seed makes
// FillRandom reproducible.
func operands(cfg Config) (*matrix.Dense, *matrix.Dense, error) {
	a, err := matrix.NewDense(cfg.N)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewDense(cfg.N)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Fill == matrix.FillRandom && cfg.Seed != 0 {
		r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^seedMix))
		a.FillRandomFrom(r)
		b.FillRandomFrom(r)

		return a, b, nil
	}
	if err = a.Fill(cfg.Fill); err != nil {
		return nil, nil, err
	}
	if err = b.Fill(cfg.Fill); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// display prints a titled matrix followed by an empty line.
func display(out io.Writer, title string, m *matrix.Dense) {
	fmt.Fprintf(out, "%s\n%s\n\n", title, m)
}
