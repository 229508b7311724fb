// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtxmult/matrix"
)

func TestParse(t *testing.T) {
	m, err := matrix.Parse("1 2 3\n4 5 6\n7 8 -9\n")
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, -9}}, m.ToRows())
}

func TestParseToleratesSpacingAndCRLF(t *testing.T) {
	m, err := matrix.Parse("  1\t 2\r\n3   4\r\n")
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"blank":        "  \n",
		"short row":    "1 2\n3",
		"long row":     "1 2 3\n4 5 6",
		"not integer":  "1 x\n3 4",
		"float token":  "1 2.5\n3 4",
		"blank middle": "1 2\n\n3 4",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Parse(text)
			require.ErrorIs(t, err, matrix.ErrFormat)
		})
	}
}

func TestRender(t *testing.T) {
	m := matrix.MustParse("1 22\n-3 4444")
	require.Equal(t, "   1   22\n  -3 4444", m.String())
	require.Equal(t, " 1 22\n-3 4444", m.Render(2))
	require.Equal(t, "1 22\n-3 4444", m.Render(0))
}

// TestParseRenderRoundTrip checks Parse accepts everything Render emits.
func TestParseRenderRoundTrip(t *testing.T) {
	m, err := matrix.NewRandom(7)
	require.NoError(t, err)

	back, err := matrix.Parse(m.String())
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { matrix.MustParse("1 2") })
}
