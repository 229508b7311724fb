// SPDX-License-Identifier: MIT

// Package matrix: domain constants and fill policies.
package matrix

import (
	"fmt"
	"strings"
)

const (
	// MaxRandom is the exclusive upper bound of FillRandom values: cells are
	// drawn uniformly from [0, MaxRandom).
	MaxRandom = 10

	// CellWidth is the column width used by String: every cell is
	// right-justified to this many characters.
	CellWidth = 4
)

// FillPolicy selects how Fill overwrites every cell of a matrix.
type FillPolicy int

const (
	// FillZeros sets every cell to 0.
	FillZeros FillPolicy = iota

	// FillOnes sets every cell to 1. The benchmark uses all-ones operands so
	// that both phases time the same deterministic workload.
	FillOnes

	// FillRandom sets every cell to a uniform value in [0, MaxRandom).
	FillRandom
)

var fillNames = [...]string{
	FillZeros:  "zeros",
	FillOnes:   "ones",
	FillRandom: "random",
}

// String returns the lower-case policy name ("zeros", "ones", "random").
func (p FillPolicy) String() string {
	if p < 0 || int(p) >= len(fillNames) {
		return fmt.Sprintf("FillPolicy(%d)", int(p))
	}

	return fillNames[p]
}

// ParseFillPolicy maps a policy name (case-insensitive) back to a FillPolicy.
// Returns ErrUnknownFill for any other input.
func ParseFillPolicy(name string) (FillPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for p, s := range fillNames {
		if s == key {
			return FillPolicy(p), nil
		}
	}

	return 0, fmt.Errorf("ParseFillPolicy(%q): %w", name, ErrUnknownFill)
}

// MarshalText implements encoding.TextMarshaler so policies serialize by name
// in YAML configs and reports.
func (p FillPolicy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(fillNames) {
		return nil, fmt.Errorf("FillPolicy(%d): %w", int(p), ErrUnknownFill)
	}

	return []byte(fillNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FillPolicy) UnmarshalText(text []byte) error {
	v, err := ParseFillPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}
