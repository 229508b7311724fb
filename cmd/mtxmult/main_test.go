// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRunValid(t *testing.T) {
	code, stdout, stderr := execute(t, "--workers", "2", "8", "4")
	require.Equal(t, 0, code, stderr)
	require.True(t, strings.HasPrefix(stdout, "Parameters: n=8; s=4\n"), stdout)
	require.Contains(t, stdout, "Single-threaded multiplication...\n")
	require.Contains(t, stdout, "Multi-threaded multiplication...\n")
	require.Equal(t, 2, strings.Count(stdout, "Done! It took "))
	require.NotContains(t, stderr, "Use: mtxmult n s")
}

func TestRunUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no arguments":       {},
		"one argument":       {"8"},
		"three arguments":    {"8", "4", "2"},
		"non-integer n":      {"eight", "4"},
		"non-integer s":      {"8", "four"},
		"n below minimum":    {"3", "1"},
		"s does not divide":  {"8", "3"},
		"zero tile":          {"8", "0"},
		"unknown flag":       {"--tiles", "2", "8", "4"},
		"bad fill":           {"--fill", "primes", "8", "4"},
		"bad schedule value": {"--schedule", "diagonal", "8", "4"},
		"zero repeat":        {"--repeat", "0", "8", "4"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := execute(t, args...)
			require.Equal(t, 1, code)
			require.Contains(t, stderr, "Use: mtxmult n s\n\tn: size of the matrices (n >= 4)\n\ts: size of each slice (n % s = 0)\n")
			require.NotContains(t, stdout, "Single-threaded")
		})
	}
}

func TestRunDisplay(t *testing.T) {
	code, stdout, _ := execute(t, "--display", "4", "2")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Matrix A\n   1    1    1    1\n")
	require.Contains(t, stdout, "   4    4    4    4\n\nMulti-threaded multiplication...\n")
}

func TestRunReportStdout(t *testing.T) {
	code, stdout, _ := execute(t, "--report", "-", "--fill", "random", "--seed", "3", "8", "2")
	require.Equal(t, 0, code)

	idx := strings.Index(stdout, "config:")
	require.GreaterOrEqual(t, idx, 0, stdout)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout[idx:]), &doc))
	require.Equal(t, true, doc["verified"])
	cfg := doc["config"].(map[string]any)
	require.Equal(t, "random", cfg["fill"])
	require.Equal(t, 3, cfg["seed"])
}

func TestRunConfigFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	repPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schedule: fullgrid\nrepeat: 3\nexecutor: spawn\n"), 0o600))

	code, stdout, stderr := execute(t, "--config", cfgPath, "--repeat", "2", "--report", repPath, "16", "4")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, 4, strings.Count(stdout, "Done! It took "))

	data, err := os.ReadFile(repPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	cfg := doc["config"].(map[string]any)
	require.Equal(t, "fullgrid", cfg["schedule"])
	require.Equal(t, "spawn", cfg["executor"])
	require.Equal(t, 2, cfg["repeat"])
	require.Equal(t, 16, cfg["n"])
	require.Equal(t, 1, doc["stats"].(map[string]any)["barriers"])
}

func TestRunOversizedDimension(t *testing.T) {
	code, stdout, stderr := execute(t, "1073741824", "4")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "mtxmult: ")
	require.Contains(t, stderr, "invalid dimensions")
	require.NotContains(t, stdout, "Single-threaded")
}

func TestRunBadConfigFile(t *testing.T) {
	code, _, stderr := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "8", "4")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "mtxmult: ")
	require.NotContains(t, stderr, "Use: mtxmult n s")
}
