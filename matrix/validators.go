// Package matrix: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the shape/numeric guards that the
//     counting core and the ingestion layer rely on.
//   - Return plain sentinel errors (wrapped only with a validator tag) so
//     call sites can match with errors.Is.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Returns ErrNonSquare on violation. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite scans the backing slice and rejects NaN and ±Inf entries.
// This is the numeric policy gate for ingestion: the counting core itself is
// total over any float64 input, but silently sign-classifying NaN is a trap
// best caught at the boundary.
// Returns wrapped ErrNaNInf naming the first offending flat index.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFinite: cell %d: %w", idx, ErrNaNInf)
		}
	}

	return nil
}

// ValidateLabelCount checks that a label list is index-aligned with a square
// matrix: exactly one label per row/column.
// Returns ErrDimensionMismatch on violation. Complexity: O(1).
func ValidateLabelCount(m *Dense, labels []string) error {
	if len(labels) != m.Rows() {
		return validatorErrorf("ValidateLabelCount", ErrDimensionMismatch)
	}

	return nil
}
