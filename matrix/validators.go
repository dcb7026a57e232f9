// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/empty/dimension checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → SameDimension).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive ensures m is non-nil and owns storage (not moved-from).
// Errors: ErrNilMatrix, ErrEmptyMatrix. Complexity: O(1).
func ValidateLive(m *Square) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateLive", err)
	}
	if m.n == 0 {
		return validatorErrorf("ValidateLive", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSquare checks that the storage of m really is n×n.
// The constructors make this structurally true; the check guards against a
// hand-built or corrupted value reaching the determinant.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrInvalidArgument. Complexity: O(1).
func ValidateSquare(m *Square) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if len(m.data) != m.n*m.n {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("storage holds %d elements for dimension %d: %w", len(m.data), m.n, ErrInvalidArgument))
	}

	return nil
}

// ValidateSameDimension ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameDimension(a, b *Square) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameDimension",
			fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinary is the composite check for every binary operator:
// Live(a) → Live(b) → SameDimension(a, b).
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
func ValidateBinary(a, b *Square) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameDimension(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}
