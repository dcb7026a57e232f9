// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor expansion.
//
// Cost model:
//   - Expansion along row 0 recurses into n minors of size n-1, so the total
//     work is O(n!) time and O(n²) extra space per recursion level.
//     Acceptable for the small matrices this type targets (n ≲ 10).
//   - This is deliberately NOT an LU factorisation: LU reorders the floating
//     point operations and would change rounding for the same input.

package matrix

import "fmt"

// Determinant returns det(A).
// MAIN DESCRIPTION:
//   - n == 1: the sole element.
//   - n == 2: A[0,0]*A[1,1] - A[0,1]*A[1,0].
//   - n > 2 : Σ_i sign(i) * A[0,i] * det(minor(0,i)), sign(i) = +1 for even i.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil, empty and non-n×n storage are rejected).
//   - Stage 2: log a warning when n reaches the configured threshold.
//   - Stage 3: recurse on flat row-major buffers.
//
// Errors:
//   - ErrInvalidArgument (non-square storage), ErrEmptyMatrix, ErrNilMatrix.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level (depth n-2).
func Determinant(a *Square, opts ...Option) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	if a.n >= o.detWarnDim {
		log.Warningf("Determinant: cofactor expansion on a %d×%d matrix costs O(n!)", a.n, a.n)
	}

	return cofactorDet(a.data, a.n), nil
}

// Det is the method form of Determinant.
func (m *Square) Det(opts ...Option) (float64, error) { return Determinant(m, opts...) }

// cofactorDet computes the determinant of the n×n row-major buffer d.
func cofactorDet(d []float64, n int) float64 {
	switch n {
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	}

	det := 0.0
	sign := 1.0
	minor := make([]float64, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		fillMinor(d, n, i, minor)
		det += sign * d[i] * cofactorDet(minor, n-1)
		sign = -sign
	}

	return det
}

// fillMinor writes into dst the (n-1)×(n-1) minor of d obtained by deleting
// row 0 and column skip. dst is reused across columns; the recursive call
// allocates its own buffer so the caller's dst is never overwritten early.
func fillMinor(d []float64, n, skip int, dst []float64) {
	var r, c, k int
	for r = 1; r < n; r++ {
		for c = 0; c < n; c++ {
			if c == skip {
				continue
			}
			dst[k] = d[r*n+c]
			k++
		}
	}
}

// Minor returns the (n-1)×(n-1) submatrix of m formed by deleting row and col.
//
// Errors:
//   - ErrOutOfRange for indices outside [0,n).
//   - ErrInvalidArgument for n == 1 (the minor would be empty).
//   - ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity: O(n²).
func Minor(m *Square, row, col int) (*Square, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("Minor", err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, squareErrorf("Minor", row, col, err)
	}
	if m.n == 1 {
		return nil, squareErrorf("Minor", row, col, fmt.Errorf("1×1 has no minor: %w", ErrInvalidArgument))
	}

	n := m.n
	out := &Square{n: n - 1, data: make([]float64, (n-1)*(n-1))}
	var r, c, k int
	for r = 0; r < n; r++ {
		if r == row {
			continue
		}
		for c = 0; c < n; c++ {
			if c == col {
				continue
			}
			out.data[k] = m.data[r*n+c]
			k++
		}
	}

	return out, nil
}
