// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & ownership.
//
// Purpose:
//   - Own exactly one contiguous row-major buffer per matrix, offset = i*n + j.
//   - Give copy and move semantics explicit names (Clone/CopyFrom, Move/MoveFrom)
//     so ownership of a buffer is never shared between two live matrices.
//   - Keep constructors all-or-nothing: either a fully allocated matrix or an error.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) zero-init; Clone/CopyFrom: O(n²); Move/MoveFrom/Release: O(1).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew      = "NewSquare"
	ctxNewRC    = "NewSquareRC"
	ctxFromRows = "NewFromRows"
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
)

// Square is a dense n×n matrix of float64 values.
//   - n is the dimension (rows == cols); 0 only for moved-from/released matrices.
//   - data is a flat buffer of length n*n in row-major order.
//
// The zero value is an empty matrix: safe to query, print and release, but
// rejected by arithmetic with ErrEmptyMatrix.
type Square struct {
	n    int       // dimension (>= 1 when live, 0 when empty)
	data []float64 // contiguous row-major storage (len == n*n)
}

// MaxDimension is the largest n accepted by the constructors. It keeps n*n
// far from int overflow and within what make can allocate.
const MaxDimension = 1 << 16

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// NewSquare creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxDimension; else ErrInvalidArgument.
//   - Stage 2: allocate one zero-filled buffer of n*n elements.
//
// Errors:
//   - ErrInvalidArgument (n <= 0 or n > MaxDimension).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare(n int) (*Square, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, n, ErrInvalidArgument)
	}
	if n > MaxDimension {
		return nil, fmt.Errorf("%s(%d): dimension exceeds %d: %w", ctxNew, n, MaxDimension, ErrInvalidArgument)
	}

	// make() zero-fills deterministically; a failed allocation never returns.
	return &Square{n: n, data: make([]float64, n*n)}, nil
}

// NewSquareRC is the two-parameter constructor: rows and cols must be equal
// and positive. Prefer NewSquare; this form exists for callers that carry a
// (rows, cols) shape around and want the square-only guard.
func NewSquareRC(rows, cols int) (*Square, error) {
	if rows != cols {
		return nil, fmt.Errorf("%s(%d,%d): matrix must be square: %w", ctxNewRC, rows, cols, ErrInvalidArgument)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewRC, rows, cols, ErrInvalidArgument)
	}

	return NewSquare(rows)
}

// NewFromRows builds a matrix from a literal grid, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and demos.
//
// Implementation:
//   - Stage 1: validate len(rows) > 0 and every row has len(rows) elements.
//   - Stage 2: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidArgument for an empty or ragged/non-square grid.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]float64) (*Square, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", ctxFromRows, ErrInvalidArgument)
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(rows[i]), n, ErrInvalidArgument)
		}
	}

	m, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Clone returns an independent deep copy (copy constructor).
// Cloning an empty matrix yields another empty matrix; cloning nil yields nil.
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	if m == nil {
		return nil
	}
	if m.n == 0 {
		return &Square{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Square{n: m.n, data: cp}
}

// CopyFrom replaces the contents of m with a deep copy of src (copy assignment).
// MAIN DESCRIPTION:
//   - Release the previously owned buffer, then duplicate src.
//
// Behavior highlights:
//   - Self-assignment (m == src) is a no-op that preserves the contents.
//   - The dimension of m follows src (including an empty src).
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square) CopyFrom(src *Square) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	cp := src.Clone()
	m.n, m.data = cp.n, cp.data

	return nil
}

// Move transfers ownership of the buffer to a new *Square (move constructor).
// The receiver is left empty (dimension 0, no storage) and remains safe to use.
// Complexity: O(1).
func (m *Square) Move() *Square {
	if m == nil {
		return nil
	}
	out := &Square{n: m.n, data: m.data}
	m.n, m.data = 0, nil

	return out
}

// MoveFrom takes ownership of src's buffer (move assignment).
// The destination's previous buffer is released and src is left empty.
// A self-move is a no-op that keeps the contents.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity: O(1).
func (m *Square) MoveFrom(src *Square) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.n, m.data = src.n, src.data
	src.n, src.data = 0, nil

	return nil
}

// Release drops the owned buffer and leaves an empty matrix. Idempotent.
func (m *Square) Release() {
	if m == nil {
		return
	}
	m.n, m.data = 0, nil
}

// adopt replaces m's storage with res's, emptying res. Used by the
// compound-assignment methods after the full result has been computed.
func (m *Square) adopt(res *Square) {
	m.n, m.data = res.n, res.data
	res.n, res.data = 0, nil
}
