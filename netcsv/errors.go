// Package netcsv: sentinel error set.

package netcsv

import "errors"

var (
	// ErrParse indicates malformed tabular input: broken CSV structure, or
	// an unparseable numeric cell under strict mode.
	ErrParse = errors.New("netcsv: malformed input")

	// ErrIO indicates a file-system or stream failure (open, read, write).
	ErrIO = errors.New("netcsv: i/o failure")

	// ErrEmptyInput indicates the source had no header row.
	ErrEmptyInput = errors.New("netcsv: empty input")

	// ErrNoLabels indicates a header row with no node columns.
	ErrNoLabels = errors.New("netcsv: header has no node labels")
)
