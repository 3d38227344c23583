// Package matrix: Dense is a concrete, row-major float64 matrix, storing
// elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero diagonal convention for adjacency use (no self-loops) is applied
// by callers via ZeroDiagonal; Dense itself is shape-agnostic.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate and return
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy every row into the flat backing slice.
// Complexity: O(r*c) time and memory.
//
// Errors: ErrInvalidDimensions on empty input, ErrRaggedRows when rows have
// differing lengths.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer dimension
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Copy rows, checking rectangularity as we go
	data := make([]float64, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrRaggedRows
		}
		copy(data[i*c:(i+1)*c], row)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1). Errors: wrapped ErrIndexOutOfBounds.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1). Errors: wrapped ErrIndexOutOfBounds.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data exposes the flat row-major backing slice.
// The slice is shared, not copied: hot-path consumers (sign derivation,
// triad enumeration) iterate it directly. Callers must treat it as
// read-only once the matrix is handed to the counting core.
// Complexity: O(1).
func (m *Dense) Data() []float64 { return m.data }

// ZeroDiagonal clears every (i,i) entry on a square matrix.
// Adjacency convention: diagonal entries are self-loops and are always
// treated as absent by the counting core.
// Complexity: O(min(r,c)). Errors: ErrNonSquare on rectangular input.
func (m *Dense) ZeroDiagonal() error {
	if m.r != m.c {
		return ErrNonSquare
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 0
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
