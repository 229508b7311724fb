// SPDX-License-Identifier: MIT

package bench

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mtxmult/matrix"
	"github.com/katalvlaran/mtxmult/tiled"
)

// Config describes one benchmark run. Zero values of the mode fields are the
// tiled package defaults.
//
// Example YAML:
//
//	n: 512
//	s: 64
//	fill: ones
//	repeat: 3
//	schedule: grouped
//	accumulation: reduce
//	executor: pool
//	workers: 0
type Config struct {
	N            int                `yaml:"n"`
	S            int                `yaml:"s"`
	Fill         matrix.FillPolicy  `yaml:"fill"`
	Display      bool               `yaml:"display"`
	Repeat       int                `yaml:"repeat"`
	Schedule     tiled.Schedule     `yaml:"schedule"`
	Accumulation tiled.Accumulation `yaml:"accumulation"`
	Executor     tiled.Executor     `yaml:"executor"`
	Workers      int                `yaml:"workers"`
	Seed         uint64             `yaml:"seed"`
	Verify       bool               `yaml:"verify"`
}

// DefaultConfig returns the classic benchmark setup: all-ones operands, one
// repetition, no display, result verification on. N and S are left unset.
func DefaultConfig() Config {
	return Config{
		Fill:         matrix.FillOnes,
		Repeat:       1,
		Schedule:     tiled.DefaultSchedule,
		Accumulation: tiled.DefaultAccumulation,
		Executor:     tiled.DefaultExecutor,
		Workers:      tiled.DefaultWorkers,
		Verify:       true,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return DecodeConfig(bytes.NewReader(data))
}

// DecodeConfig is LoadConfig for an already opened stream.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// Validate applies the command-line contract: n >= tiled.MinDimension and
// s dividing n, plus sane repeat and worker counts.
// All failures wrap tiled.ErrInvalidParameters.
func (c Config) Validate() error {
	if err := tiled.Validate(c.N, c.S); err != nil {
		return err
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat=%d must be at least 1: %w", c.Repeat, tiled.ErrInvalidParameters)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d must not be negative: %w", c.Workers, tiled.ErrInvalidParameters)
	}

	return nil
}

// TiledOptions translates the mode fields into tiled options.
func (c Config) TiledOptions(logger *slog.Logger) []tiled.Option {
	return []tiled.Option{
		tiled.WithSchedule(c.Schedule),
		tiled.WithAccumulation(c.Accumulation),
		tiled.WithExecutor(c.Executor),
		tiled.WithWorkers(c.Workers),
		tiled.WithLogger(logger),
	}
}
