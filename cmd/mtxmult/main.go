// SPDX-License-Identifier: MIT

// Command mtxmult compares single-threaded and tiled multi-threaded
// multiplication of two n×n integer matrices.
//
// Usage:
//
//	mtxmult [flags] n s
//
// n is the matrix dimension (n >= 4) and s the tile size (n % s = 0).
// Invalid arguments print the usage text on stderr and exit with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mtxmult/bench"
	"github.com/katalvlaran/mtxmult/tiled"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, tiled.ErrInvalidParameters):
		fmt.Fprintln(stderr, err)
		printUsage(stderr, cmd)
	default:
		fmt.Fprintf(stderr, "mtxmult: %v\n", err)
	}

	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := bench.DefaultConfig()
	var (
		configPath string
		reportPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "mtxmult n s",
		Short:         "Compare single-threaded and tiled multi-threaded matrix multiplication",
		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = bench.LoadConfig(configPath); err != nil {
					return err
				}
			}
			// positionalArgs already checked both values
			cfg.N, cfg.S = mustAtoi(args[0]), mustAtoi(args[1])
			applyFlags(cmd.Flags(), &cfg, flags)

			logger := newLogger(cmd.ErrOrStderr(), verbose)
			rep, err := bench.Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), reportPath, rep)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	bindFlags(cmd.Flags(), &flags)
	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "YAML file with benchmark settings; flags and arguments override it")
	fs.StringVar(&reportPath, "report", "", "write a YAML report to this path (- for stdout)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log debug events to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeReport(stdout io.Writer, path string, rep *bench.Report) error {
	switch path {
	case "":
		return nil
	case "-":
		return rep.WriteYAML(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = rep.WriteYAML(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
