// SPDX-License-Identifier: MIT

package main

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mtxmult/bench"
)

var errUsage = errors.New("invalid arguments")

const usageText = `Use: mtxmult n s
	n: size of the matrices (n >= 4)
	s: size of each slice (n % s = 0)`

func printUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(w, usageText)
	fmt.Fprintf(w, "\nFlags:\n%s", cmd.Flags().FlagUsages())
}

// positionalArgs accepts exactly two integers.
func positionalArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d", errUsage, len(args))
	}
	for i, name := range []string{"n", "s"} {
		if _, err := strconv.Atoi(args[i]); err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", errUsage, name, args[i])
		}
	}

	return nil
}

func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}

	return v
}

// textValue adapts an encoding.TextMarshaler/TextUnmarshaler pair (the
// enum types of matrix and tiled) to pflag.Value.
type textValue struct {
	v interface {
		encoding.TextMarshaler
		encoding.TextUnmarshaler
	}
	typ string
}

func (t textValue) String() string {
	b, err := t.v.MarshalText()
	if err != nil {
		return ""
	}

	return string(b)
}

func (t textValue) Set(s string) error { return t.v.UnmarshalText([]byte(s)) }

func (t textValue) Type() string { return t.typ }

// bindFlags registers the benchmark flags, storing their values in c.
func bindFlags(fs *pflag.FlagSet, c *bench.Config) {
	fs.BoolVar(&c.Display, "display", c.Display, "print the operands and both results")
	fs.Var(textValue{&c.Fill, "fill"}, "fill", "operand contents: zeros, ones or random")
	fs.IntVar(&c.Repeat, "repeat", c.Repeat, "number of timed runs per phase")
	fs.Var(textValue{&c.Schedule, "schedule"}, "schedule", "tile schedule: grouped or fullgrid")
	fs.Var(textValue{&c.Accumulation, "accumulation"}, "accumulation", "partial tile accumulation: reduce or locked")
	fs.Var(textValue{&c.Executor, "executor"}, "executor", "task executor: pool or spawn")
	fs.IntVar(&c.Workers, "workers", c.Workers, "pool size (0 means GOMAXPROCS)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for --fill=random (0 picks a random seed)")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "fail when the tiled result differs from the single-threaded one")
}

// applyFlags copies into dst only the flags set on the command line, so a
// config file value survives unless it is explicitly overridden.
func applyFlags(fs *pflag.FlagSet, dst *bench.Config, src bench.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "display":
			dst.Display = src.Display
		case "fill":
			dst.Fill = src.Fill
		case "repeat":
			dst.Repeat = src.Repeat
		case "schedule":
			dst.Schedule = src.Schedule
		case "accumulation":
			dst.Accumulation = src.Accumulation
		case "executor":
			dst.Executor = src.Executor
		case "workers":
			dst.Workers = src.Workers
		case "seed":
			dst.Seed = src.Seed
		case "verify":
			dst.Verify = src.Verify
		}
	})
}
