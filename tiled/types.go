// SPDX-License-Identifier: MIT

// Package tiled: execution modes and their text forms.
package tiled

import (
	"fmt"
	"strings"
)

// Schedule controls how output-tile groups are ordered.
type Schedule int

const (
	// Grouped dispatches the g workers of one output tile, waits on that
	// group's barrier, then moves to the next tile: g² sequential barriers.
	Grouped Schedule = iota

	// FullGrid dispatches all g³ tasks at once behind a single barrier. This
	// is safe because every output tile is written only by its own group.
	FullGrid
)

// Accumulation controls how the g partial products of one output tile are
// combined.
type Accumulation int

const (
	// PrivateReduce has every worker write its own partial tile; after the
	// barrier the partials are summed into the output tile in k order on one
	// goroutine. No two workers ever write the same memory.
	PrivateReduce Accumulation = iota

	// LockedTile has every worker compute a private partial and then add it
	// into the shared output tile while holding that tile's mutex.
	LockedTile
)

// Executor controls how tasks are run.
type Executor int

const (
	// Pooled runs tasks on a bounded, persistent workerpool.Pool.
	Pooled Executor = iota

	// SpawnPerTask starts one goroutine per task and tears it down afterwards.
	SpawnPerTask
)

var (
	scheduleNames     = [...]string{Grouped: "grouped", FullGrid: "fullgrid"}
	accumulationNames = [...]string{PrivateReduce: "reduce", LockedTile: "locked"}
	executorNames     = [...]string{Pooled: "pool", SpawnPerTask: "spawn"}
)

func enumName(names []string, kind string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}

	return names[v]
}

func parseEnum(names []string, kind, s string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == key {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unknown %s %q (want one of %s): %w", kind, s, strings.Join(names, ", "), ErrInvalidParameters)
}

func (s Schedule) String() string     { return enumName(scheduleNames[:], "Schedule", int(s)) }
func (a Accumulation) String() string { return enumName(accumulationNames[:], "Accumulation", int(a)) }
func (e Executor) String() string     { return enumName(executorNames[:], "Executor", int(e)) }

func (s Schedule) valid() bool     { return s >= 0 && int(s) < len(scheduleNames) }
func (a Accumulation) valid() bool { return a >= 0 && int(a) < len(accumulationNames) }
func (e Executor) valid() bool     { return e >= 0 && int(e) < len(executorNames) }

// ParseSchedule maps "grouped" or "fullgrid" to a Schedule.
func ParseSchedule(s string) (Schedule, error) {
	v, err := parseEnum(scheduleNames[:], "schedule", s)
	return Schedule(v), err
}

// ParseAccumulation maps "reduce" or "locked" to an Accumulation.
func ParseAccumulation(s string) (Accumulation, error) {
	v, err := parseEnum(accumulationNames[:], "accumulation", s)
	return Accumulation(v), err
}

// ParseExecutor maps "pool" or "spawn" to an Executor.
func ParseExecutor(s string) (Executor, error) {
	v, err := parseEnum(executorNames[:], "executor", s)
	return Executor(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (s Schedule) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Schedule) UnmarshalText(text []byte) error {
	v, err := ParseSchedule(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Accumulation) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Accumulation) UnmarshalText(text []byte) error {
	v, err := ParseAccumulation(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Executor) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Executor) UnmarshalText(text []byte) error {
	v, err := ParseExecutor(string(text))
	if err != nil {
		return err
	}
	*e = v

	return nil
}

// Stats describes the work performed by one Run.
type Stats struct {
	GridWidth int `yaml:"grid_width"` // g = n/s
	Groups    int `yaml:"groups"`     // output tiles released (g²)
	Tasks     int `yaml:"tasks"`      // partial products computed (g³)
	Barriers  int `yaml:"barriers"`   // g² for Grouped, 1 for FullGrid
	Workers   int `yaml:"workers"`    // pool size, or tasks per barrier for SpawnPerTask

	// PeakPartials is the largest number of s×s partial tiles alive at once.
	PeakPartials int `yaml:"peak_partials"`
}
