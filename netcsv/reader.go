// Package netcsv: CSV adjacency ingestion.

package netcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/triad/matrix"
)

// ReadAdjacency parses a labeled adjacency matrix from r.
//
// Expected layout (n node columns fixed by the header):
//
//	"",A,B,C
//	A,0,1,-1
//	B,1,0,1
//	C,-1,1,0
//
// Stage 1 (Header): read the first record; cells after the first become the
// node labels and fix n.
// Stage 2 (Rows): stream data records; each record's first cell (the row
// label) is skipped, remaining cells parse as float64 into row-major order.
// Short rows zero-fill; cells and rows beyond n are ignored.
// Stage 3 (Finalize): zero the diagonal and return the matrix with labels.
//
// Cell policy: lenient by default (unparseable → 0 / no edge); strict mode
// (WithStrictCells) aborts on the first bad cell with ErrParse naming its
// position.
//
// Complexity: O(n²) time and memory.
// Errors: ErrEmptyInput, ErrNoLabels, ErrParse, ErrIO.
func ReadAdjacency(r io.Reader, opts ...Option) (*matrix.Dense, []string, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // flexible: row widths may vary, we zero-fill
	cr.TrimLeadingSpace = true

	// Stage 1: header row → labels.
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyInput
		}

		return nil, nil, readErr(err)
	}
	if len(header) < 2 {
		return nil, nil, ErrNoLabels
	}
	labels := make([]string, len(header)-1)
	for i, h := range header[1:] {
		labels[i] = strings.TrimSpace(h)
	}
	n := len(labels)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err // unreachable: n >= 1 by construction
	}

	// Stage 2: data rows.
	for row := 0; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, readErr(err)
		}
		if row >= n {
			continue // extra rows carry no addressable node: ignore
		}

		for col, field := range record[1:] {
			if col >= n {
				break
			}
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				if o.strictCells {
					return nil, nil, fmt.Errorf("row %d col %d %q: %w", row, col, field, ErrParse)
				}
				v = 0 // lenient: malformed cell is "no edge"
			}
			_ = m.Set(row, col, v) // bounds guaranteed by the guards above
		}
	}

	// Stage 3: adjacency convention.
	_ = m.ZeroDiagonal() // square by construction

	return m, labels, nil
}

// ReadAdjacencyFile opens path and delegates to ReadAdjacency.
// Errors: ErrIO on open failures, plus everything ReadAdjacency returns.
func ReadAdjacencyFile(path string, opts ...Option) (*matrix.Dense, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, ErrIO)
	}
	defer f.Close()

	return ReadAdjacency(f, opts...)
}

// readErr classifies a csv.Reader failure into the package sentinels:
// structural CSV problems are ErrParse, everything else is stream ErrIO.
func readErr(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%v: %w", err, ErrParse)
	}

	return fmt.Errorf("%v: %w", err, ErrIO)
}
