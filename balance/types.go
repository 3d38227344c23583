// Package balance: domain types for sign classification.
// Counts lives in counts.go; options in options.go per the global conventions.

package balance

import (
	"fmt"

	"github.com/katalvlaran/triad/matrix"
)

// Sign classifies an edge weight: +1 positive, -1 negative, 0 absent.
// Zero is "no edge", not a third relationship class; triples containing a
// zero-sign pair are excluded from every count.
type Sign int8

// SignOf maps a real-valued weight to its ternary sign.
// Policy for non-finite input: NaN compares false against zero on both
// sides and therefore maps to 0 (no edge); ±Inf keep their sign.
// Pure, total. Complexity: O(1).
func SignOf(v float64) Sign {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SignMatrix is an n×n ternary view of an adjacency matrix, stored flat in
// row-major order for locality. It is derived once and read-only afterwards:
// the counting hot paths share it across workers without locking.
// Invariant: len(signs) == n*n and signs[i*n+i] == 0 for all i.
type SignMatrix struct {
	n     int
	signs []Sign
}

// SignsOf derives a SignMatrix from a square dense adjacency in one pass.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Execute): elementwise SignOf over the flat backing slice.
// Stage 3 (Finalize): force the diagonal to zero (self-loops never count).
// Complexity: O(n²) time and memory.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func SignsOf(m *matrix.Dense) (*SignMatrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}

	n := m.Rows()
	signs := make([]Sign, n*n)
	for idx, v := range m.Data() {
		signs[idx] = SignOf(v)
	}
	for i := 0; i < n; i++ {
		signs[i*n+i] = 0
	}

	return &SignMatrix{n: n, signs: signs}, nil
}

// N returns the node count. Complexity: O(1).
func (s *SignMatrix) N() int { return s.n }

// At returns the sign of the (i,j) edge.
// Complexity: O(1). Errors: wrapped matrix.ErrIndexOutOfBounds.
func (s *SignMatrix) At(i, j int) (Sign, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("SignMatrix.At(%d,%d): %w", i, j, matrix.ErrIndexOutOfBounds)
	}

	return s.signs[i*s.n+j], nil
}
