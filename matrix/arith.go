// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operators of Square: element-wise
// addition, subtraction and products, matrix multiplication, scalar scaling,
// division and remainder, and transposition. All functions perform strict
// fail-fast validation, never mutate their operands, and return a freshly
// allocated result.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opMod       = "Mod"
	opScale     = "Scale"
	opDiv       = "Div"
	opModScalar = "ModScalar"
	opTranspose = "Transpose"
	opPower     = "Power"
	opDet       = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binary validates a and b, then runs the element-wise kernel f.
func binary(a, b *Square, opTag string, f func(x, y float64) float64) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return ewBinary(a, b, f), nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *Square) (*Square, error) {
	return binary(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Errors and complexity as for Add.
func Sub(a, b *Square) (*Square, error) {
	return binary(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Errors and complexity as for Add.
func Hadamard(a, b *Square) (*Square, error) {
	return binary(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Mod is the element-wise "modulo" operator of the matrix surface.
//
// COMPATIBILITY QUIRK: it computes the element-wise PRODUCT
// C[i,j] = A[i,j] * B[i,j] (identical to Hadamard), not a remainder.
// Use ModScalar for a real remainder by an integer.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
func Mod(a, b *Square) (*Square, error) {
	return binary(a, b, opMod, func(x, y float64) float64 { return x * y })
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateBinary (square operands of equal dimension only).
//   - Stage 2: i→k→j over the flat row-major buffers.
//
// Behavior highlights:
//   - Each C[i,j] accumulates A[i,k]*B[k,j] for k = 0..n-1 in increasing k
//     starting from 0.0, so rounding is that of the textbook i→j→k loop.
//   - Zero entries of A are NOT skipped: 0*Inf must still produce NaN.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := &Square{n: n, data: make([]float64, n*n)}
	var i, j, k int
	var rowOffA, rowOffB, rowOffR int
	var av float64
	for i = 0; i < n; i++ {
		rowOffA = i * n
		rowOffR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowOffA+k]
			rowOffB = k * n
			for j = 0; j < n; j++ {
				res.data[rowOffR+j] += av * b.data[rowOffB+j]
			}
		}
	}

	return res, nil
}

// Scale returns C = A * s. No failure mode other than a nil/empty operand.
// Complexity: O(n²).
func Scale(a *Square, s float64) (*Square, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(a, func(x float64) float64 { return x * s }), nil
}

// ScaleLeft returns C = s * A; identical to Scale(a, s).
func ScaleLeft(s float64, a *Square) (*Square, error) { return Scale(a, s) }

// Div returns C = A / s.
//
// Errors:
//   - ErrDivisionByZero when s == 0.0 (either sign of zero).
//   - ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Div(a *Square, s float64) (*Square, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}

	return ewMap(a, func(x float64) float64 { return x / s }), nil
}

// ModScalar returns C[i,j] = math.Mod(A[i,j], k): the floating-point
// remainder whose sign follows the dividend (C fmod semantics), not an
// integer truncating modulo.
//
// Errors:
//   - ErrDivisionByZero when k == 0.
//   - ErrNilMatrix, ErrEmptyMatrix.
func ModScalar(a *Square, k int) (*Square, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	if k == 0 {
		return nil, matrixErrorf(opModScalar, ErrDivisionByZero)
	}
	divisor := float64(k)

	return ewMap(a, func(x float64) float64 { return math.Mod(x, divisor) }), nil
}

// Transpose returns a new matrix with C[i,j] = A[j,i].
// Square operands keep their dimension, so this never fails for a non-nil
// input; transposing an empty matrix yields an empty matrix.
// Transpose(Transpose(A)) equals A exactly.
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Transpose(a *Square) (*Square, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if a.n == 0 {
		return &Square{}, nil
	}

	n := a.n
	res := &Square{n: n, data: make([]float64, n*n)}
	var i, j, baseSrc int
	for i = 0; i < n; i++ {
		baseSrc = i * n
		for j = 0; j < n; j++ {
			res.data[j*n+i] = a.data[baseSrc+j]
		}
	}

	return res, nil
}
