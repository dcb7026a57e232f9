// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/squaremat/matrix"
)

// TestAddScenario is the ones + pattern scenario of the demonstration program.
func TestAddScenario(t *testing.T) {
	A := mustSquare(t, 3)
	A.Fill(1.0)
	B := mustRows(t, demoB())

	sum, err := matrix.Add(A, B)
	require.NoError(t, err)
	requireGrid(t, [][]float64{
		{2, 5, 1},
		{1, 3, 6},
		{7, 1, 4},
	}, sum)

	diff, err := matrix.Sub(A, B)
	require.NoError(t, err)
	requireGrid(t, [][]float64{
		{0, -3, 1},
		{1, -1, -4},
		{-5, 1, -2},
	}, diff)

	// Operands are never mutated.
	requireGrid(t, demoB(), B)
	require.Equal(t, 9.0, A.Sum())
}

// TestBinaryDimensionMismatch covers every binary operator on every mismatched pair.
func TestBinaryDimensionMismatch(t *testing.T) {
	ops := map[string]func(a, b *matrix.Square) (*matrix.Square, error){
		"Add":      matrix.Add,
		"Sub":      matrix.Sub,
		"Mul":      matrix.Mul,
		"Mod":      matrix.Mod,
		"Hadamard": matrix.Hadamard,
	}
	dims := []int{1, 2, 3, 4}
	for name, op := range ops {
		for _, da := range dims {
			for _, db := range dims {
				if da == db {
					continue
				}
				_, err := op(mustSquare(t, da), mustSquare(t, db))
				require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "%s %d vs %d", name, da, db)
			}
		}
		_, err := op(nil, mustSquare(t, 2))
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}
}

// TestMulIdentity checks A·I == I·A == A exactly.
func TestMulIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		A := randomSquare(t, n, int64(n))
		I := mustIdentity(t, n)

		left, err := matrix.Mul(A, I)
		require.NoError(t, err)
		require.True(t, matrix.Equal(A, left), "A·I n=%d", n)

		right, err := matrix.Mul(I, A)
		require.NoError(t, err)
		require.True(t, matrix.Equal(A, right), "I·A n=%d", n)
	}
}

// TestMulKnown checks a hand-computed product.
func TestMulKnown(t *testing.T) {
	A := mustRows(t, [][]float64{{3, 5, 0}, {1, 1, 4}, {0, 1, 2}})
	B := mustRows(t, demoB())

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)
	requireGrid(t, [][]float64{
		{3, 22, 25},
		{25, 6, 17},
		{12, 2, 11},
	}, got)
}

// TestMulAgainstGonum compares Mul with mat64 on random data.
func TestMulAgainstGonum(t *testing.T) {
	for n := 1; n <= 6; n++ {
		A := randomSquare(t, n, 100+int64(n))
		B := randomSquare(t, n, 200+int64(n))

		got, err := matrix.Mul(A, B)
		require.NoError(t, err)

		var want mat64.Dense
		want.Mul(toMat64(t, A), toMat64(t, B))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, _ := got.At(i, j)
				require.InDelta(t, want.At(i, j), v, 1e-10, "n=%d (%d,%d)", n, i, j)
			}
		}
	}
}

// TestMulDoesNotSkipZeros: 0 * Inf must propagate as NaN.
func TestMulDoesNotSkipZeros(t *testing.T) {
	A := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	B := mustRows(t, [][]float64{{math.Inf(1), 0}, {0, 1}})

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	require.True(t, math.IsNaN(v))
}

// TestScaleCommutes checks A*s == s*A.
func TestScaleCommutes(t *testing.T) {
	A := mustRows(t, exampleA())

	r, err := matrix.Scale(A, 10)
	require.NoError(t, err)
	l, err := matrix.ScaleLeft(10, A)
	require.NoError(t, err)
	require.True(t, matrix.Equal(r, l))

	v, _ := r.At(1, 2)
	require.Equal(t, -120.0, v)
}

// TestDivByZero ensures Div fails with ErrDivisionByZero for every A.
func TestDivByZero(t *testing.T) {
	for n := 1; n <= 4; n++ {
		A := randomSquare(t, n, int64(n))
		_, err := matrix.Div(A, 0.0)
		require.ErrorIs(t, err, matrix.ErrDivisionByZero)
		_, err = matrix.Div(A, math.Copysign(0, -1))
		require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	}

	B := mustRows(t, demoB())
	half, err := matrix.Div(B, 2.0)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{0.5, 2, 0}, {0, 1, 2.5}, {3, 0, 1.5}}, half)
}

// TestModScalar covers the fmod semantics and division by zero.
func TestModScalar(t *testing.T) {
	A := mustRows(t, [][]float64{{7, -7}, {5.5, -0.5}})

	got, err := matrix.ModScalar(A, 3)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, -1}, {2.5, -0.5}}, got) // sign follows dividend

	got, err = matrix.ModScalar(A, -3)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, -1}, {2.5, -0.5}}, got)

	for n := 1; n <= 4; n++ {
		_, err = matrix.ModScalar(randomSquare(t, n, int64(n)), 0)
		require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	}
}

// TestModIsElementwiseProduct pins the compatibility quirk: matrix % matrix
// multiplies element-wise instead of computing a remainder.
func TestModIsElementwiseProduct(t *testing.T) {
	A := mustRows(t, [][]float64{{3, 5, 0}, {1, 1, 4}, {0, 1, 2}})
	B := mustRows(t, demoB())

	got, err := matrix.Mod(A, B)
	require.NoError(t, err)
	requireGrid(t, [][]float64{
		{3, 20, 0},
		{0, 2, 20},
		{0, 0, 6},
	}, got)

	had, err := matrix.Hadamard(A, B)
	require.NoError(t, err)
	require.True(t, matrix.Equal(had, got))
}

// TestTranspose covers the involution and a known value.
func TestTranspose(t *testing.T) {
	B := mustRows(t, demoB())
	bt, err := matrix.Transpose(B)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, 0, 6}, {4, 2, 0}, {0, 5, 3}}, bt)

	for n := 1; n <= 6; n++ {
		A := randomSquare(t, n, 7*int64(n))
		once, err := matrix.T(A)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, matrix.Equal(A, twice))
	}

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
