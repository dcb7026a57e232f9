// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical
// Option parameters (programmer errors).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Operations wrap these sentinels with matrixErrorf ("Add: matrix: ...") and
// element accessors with squareErrorf ("Square.At(1,2): matrix: ...").
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty (moved-from) -> dimension mismatch -> argument/zero checks.

var (
	// ErrInvalidArgument is returned for non-positive or mismatched construction
	// dimensions, negative exponents, and determinant requests on storage that
	// is not square.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row and RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a binary operator on matrices of differing
	// dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero is returned by Div (scalar 0.0) and ModScalar (integer 0).
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNilMatrix indicates that a nil *Square was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrEmptyMatrix signals that a moved-from or released matrix (dimension 0)
// was used where a live matrix is required. It is a refinement of
// ErrInvalidArgument, so errors.Is(err, ErrInvalidArgument) also holds.
var ErrEmptyMatrix = fmt.Errorf("%w: empty (moved-from) matrix", ErrInvalidArgument)
