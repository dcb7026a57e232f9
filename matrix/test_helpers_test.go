// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the Square tests.
//   • Bridge to gonum's mat64 so numeric kernels can be checked against an
//     independent implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/squaremat/matrix"
)

// mustSquare ALLOCATES an n×n zero matrix or fails the test.
func mustSquare(t testing.TB, n int) *matrix.Square {
	t.Helper()
	m, err := matrix.NewSquare(n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}

	return m
}

// mustRows builds a matrix from a literal grid or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Square {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(t testing.TB, n int) *matrix.Square {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// gridOf copies m into a [][]float64 through the public Row view.
func gridOf(t testing.TB, m *matrix.Square) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Dimension())
	for i := range out {
		rv, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = rv.Values()
	}

	return out
}

// requireGrid fails with a readable diff when m does not hold want exactly.
func requireGrid(t testing.TB, want [][]float64, m *matrix.Square) {
	t.Helper()
	if diff := cmp.Diff(want, gridOf(t, m)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// randomSquare fills an n×n matrix with deterministic values in [-5, 5).
func randomSquare(t testing.TB, n int, seed int64) *matrix.Square {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustSquare(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.Float64()*10-5); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// randomIntSquare fills an n×n matrix with deterministic integers in [-3, 3].
// Products of such matrices stay exactly representable for small powers.
func randomIntSquare(t testing.TB, n int, seed int64) *matrix.Square {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustSquare(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, float64(rng.Intn(7)-3)); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// toMat64 converts m into a gonum dense matrix (row-major copy).
func toMat64(t testing.TB, m *matrix.Square) *mat64.Dense {
	t.Helper()
	n := m.Dimension()
	data := make([]float64, 0, n*n)
	for _, row := range gridOf(t, m) {
		data = append(data, row...)
	}

	return mat64.NewDense(n, n, data)
}

// exampleA is the 3×3 fixture with mixed signs and fractions.
func exampleA() [][]float64 {
	return [][]float64{
		{4.5, 8.0, 7.0},
		{2.0, 0.0, -12.0},
		{3.3, 5.6, -2.1},
	}
}

// demoB is the pattern grid used by the demonstration program.
func demoB() [][]float64 {
	return [][]float64{
		{1, 4, 0},
		{0, 2, 5},
		{6, 0, 3},
	}
}
