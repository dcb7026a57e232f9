// SPDX-License-Identifier: MIT

// Package matrix - element access.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Offer RowView, a borrowed, bounds-checked window onto one row.
//
// Complexity quicksheet:
//   - At/Set/Row: O(1); RowView.At/Set: O(1); Fill: O(n²).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"  // method tag used in error wrappers
	ctxSet    = "Set" // method tag used in error wrappers
	ctxRow    = "Row"
	ctxViewAt = "RowView.At"
	ctxViewSt = "RowView.Set"
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// Format: "Square.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Dimension returns n (rows == cols). 0 for empty and nil matrices.
func (m *Square) Dimension() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Rows returns the number of rows (== Dimension).
func (m *Square) Rows() int { return m.Dimension() }

// Cols returns the number of columns (== Dimension).
func (m *Square) Cols() int { return m.Dimension() }

// IsEmpty reports whether m holds no storage (moved-from, released or nil).
func (m *Square) IsEmpty() bool { return m == nil || m.n == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Negative indices are rejected explicitly.
// Complexity: O(1).
func (m *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Square) At(row, col int) (float64, error) {
	if m == nil {
		return 0, squareErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Square) Set(row, col int, v float64) error {
	if m == nil {
		return squareErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites every element with v. NaN and ±Inf are stored as-is.
// Complexity: O(n²).
func (m *Square) Fill(v float64) {
	if m == nil {
		return
	}
	for idx := range m.data {
		m.data[idx] = v
	}
}

// Row returns a borrowed view onto row i.
// MAIN DESCRIPTION:
//   - Non-owning window into m's storage; writes through the view mutate m.
//
// Behavior highlights:
//   - Rejects i < 0 and i >= n with ErrOutOfRange.
//   - The view also bound-checks the column index (At/Set on RowView).
//
// Notes:
//   - A view must not be kept past a Move/MoveFrom/CopyFrom/Release of m or of
//     any compound assignment on m: those replace the buffer, and the view
//     keeps pointing at the old one.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Row(i int) (RowView, error) {
	if m == nil {
		return RowView{}, fmt.Errorf("Square.%s(%d): %w", ctxRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.n {
		return RowView{}, fmt.Errorf("Square.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return RowView{row: i, cells: m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]}, nil
}

// RowView is a borrowed reference to one row of a Square.
// The capacity of cells is clipped to the row so the view can never reach
// into the next row.
type RowView struct {
	row   int       // row index in the owning matrix
	cells []float64 // aliased sub-slice of the owner's buffer
}

// Index returns the row index the view was created for.
func (v RowView) Index() int { return v.row }

// Len returns the number of columns in the row.
func (v RowView) Len() int { return len(v.cells) }

// At reads column j of the row or returns ErrOutOfRange.
func (v RowView) At(j int) (float64, error) {
	if j < 0 || j >= len(v.cells) {
		return 0, squareErrorf(ctxViewAt, v.row, j, ErrOutOfRange)
	}

	return v.cells[j], nil
}

// Set writes column j of the row through to the owning matrix.
func (v RowView) Set(j int, val float64) error {
	if j < 0 || j >= len(v.cells) {
		return squareErrorf(ctxViewSt, v.row, j, ErrOutOfRange)
	}
	v.cells[j] = val

	return nil
}

// Values returns a copy of the row; mutating it does not affect the matrix.
func (v RowView) Values() []float64 {
	out := make([]float64, len(v.cells))
	copy(out, v.cells)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(n²).
func (m *Square) Do(f func(i, j int, v float64) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
