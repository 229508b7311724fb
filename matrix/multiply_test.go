// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtxmult/matrix"
)

// naiveProduct is an independent reference built on nested slices.
func naiveProduct(a, b [][]int64) [][]int64 {
	n := len(a)
	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			var s int64
			for k := 0; k < n; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

func TestMultiply2x2(t *testing.T) {
	a := matrix.MustParse("1 2\n3 4")
	b := matrix.MustParse("5 6\n7 8")

	c, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{19, 22}, {43, 50}}, c.ToRows())

	// Operands are left untouched.
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, a.ToRows())
}

func TestMultiplyMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{1, 3, 8, 17} {
		a, _ := matrix.NewDense(n)
		b, _ := matrix.NewDense(n)
		a.FillRandomFrom(r)
		b.FillRandomFrom(r)

		c, err := matrix.Multiply(a, b)
		require.NoError(t, err)
		if diff := cmp.Diff(naiveProduct(a.ToRows(), b.ToRows()), c.ToRows()); diff != "" {
			t.Fatalf("n=%d product mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestMultiplyByZeroIsZero(t *testing.T) {
	a, _ := matrix.NewRandom(6)
	z, _ := matrix.NewFilled(6, matrix.FillZeros)

	c, err := matrix.Multiply(a, z)
	require.NoError(t, err)
	require.True(t, c.Equal(z))
}

func TestMultiplyOnes(t *testing.T) {
	a, _ := matrix.NewOnes(5)
	c, err := matrix.Multiply(a, a)
	require.NoError(t, err)
	for _, row := range c.ToRows() {
		for _, v := range row {
			require.Equal(t, int64(5), v)
		}
	}
}

func TestMultiplyErrors(t *testing.T) {
	a, _ := matrix.NewDense(2)
	b, _ := matrix.NewDense(3)

	_, err := matrix.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Multiply(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Multiply(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddMultiplyAccumulates verifies the receiver's contents are kept.
func TestAddMultiplyAccumulates(t *testing.T) {
	c := matrix.MustParse("1 1\n1 1")
	a := matrix.MustParse("1 2\n3 4")
	b := matrix.MustParse("5 6\n7 8")

	require.NoError(t, c.AddMultiply(a, b))
	require.Equal(t, [][]int64{{20, 23}, {44, 51}}, c.ToRows())

	require.NoError(t, c.AddMultiply(a, b))
	require.Equal(t, [][]int64{{39, 45}, {87, 101}}, c.ToRows())
}

func TestAddMultiplyErrors(t *testing.T) {
	c, _ := matrix.NewDense(3)
	a, _ := matrix.NewDense(2)

	require.ErrorIs(t, c.AddMultiply(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, c.AddMultiply(nil, a), matrix.ErrNilMatrix)

	var nilC *matrix.Dense
	require.ErrorIs(t, nilC.AddMultiply(a, a), matrix.ErrNilMatrix)
}

func TestAdd(t *testing.T) {
	c := matrix.MustParse("1 2\n3 4")
	require.NoError(t, c.Add(matrix.MustParse("10 20\n30 40")))
	require.Equal(t, [][]int64{{11, 22}, {33, 44}}, c.ToRows())

	require.ErrorIs(t, c.Add(matrix.MustParse("1")), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, c.Add(nil), matrix.ErrNilMatrix)
}
