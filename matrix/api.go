// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors and aliases.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     implementation.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized n×n matrix.
// It is a thin alias of NewSquare with an intention-revealing name.
func NewZeros(n int) (*Square, error) { return NewSquare(n) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Square, error) {
	I, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns the identity with m's dimension.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
func IdentityLike(m *Square) (*Square, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.n)
}

// ZerosLike returns a zero matrix with m's dimension.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
func ZerosLike(m *Square) (*Square, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewSquare(m.n)
}

// ---------- Aliases ----------

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Square) (*Square, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Square) (*Square, error) { return Transpose(m) }
