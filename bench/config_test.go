// SPDX-License-Identifier: MIT

package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtxmult/matrix"
	"github.com/katalvlaran/mtxmult/tiled"
)

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.True(t, cfg.Verify)
	require.Equal(t, matrix.FillOnes, cfg.Fill)
	require.Equal(t, 1, cfg.Repeat)
}

func TestDecodeConfigOverrides(t *testing.T) {
	doc := `
n: 64
s: 16
fill: random
seed: 7
repeat: 3
schedule: fullgrid
accumulation: locked
executor: spawn
workers: 2
verify: false
`
	cfg, err := DecodeConfig(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, Config{
		N:            64,
		S:            16,
		Fill:         matrix.FillRandom,
		Repeat:       3,
		Schedule:     tiled.FullGrid,
		Accumulation: tiled.LockedTile,
		Executor:     tiled.SpawnPerTask,
		Workers:      2,
		Seed:         7,
		Verify:       false,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "n: 8\nsize: 4\n",
		"bad fill":         "fill: primes\n",
		"bad schedule":     "schedule: diagonal\n",
		"bad accumulation": "accumulation: atomic\n",
		"bad executor":     "executor: threads\n",
		"not a number":     "n: eight\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 16\ns: 4\ndisplay: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.N)
	require.Equal(t, 4, cfg.S)
	require.True(t, cfg.Display)
	require.Equal(t, tiled.DefaultSchedule, cfg.Schedule)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrConfig)
}

func TestConfigValidate(t *testing.T) {
	base := DefaultConfig()
	base.N, base.S = 8, 4
	require.NoError(t, base.Validate())

	mutate := map[string]func(*Config){
		"n below minimum":   func(c *Config) { c.N, c.S = 3, 1 },
		"s does not divide": func(c *Config) { c.S = 3 },
		"s zero":            func(c *Config) { c.S = 0 },
		"repeat zero":       func(c *Config) { c.Repeat = 0 },
		"negative workers":  func(c *Config) { c.Workers = -1 },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			cfg := base
			fn(&cfg)
			require.ErrorIs(t, cfg.Validate(), tiled.ErrInvalidParameters)
		})
	}
}
