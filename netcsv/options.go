// Package netcsv: functional configuration for ingestion.

package netcsv

// DefaultStrictCells documents the zero-value behavior: lenient cell
// parsing (unparseable cells become 0 / no edge), matching the historical
// ingestion default. Strict mode is opt-in via WithStrictCells.
const DefaultStrictCells = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective ingestion configuration. Fields are
// unexported; public entry points accept `...Option`.
type Options struct {
	strictCells bool // DefaultStrictCells
}

// WithStrictCells makes every unparseable numeric cell a hard ErrParse
// instead of a silent 0/no-edge default. Complexity: O(1).
//
// Notes:
//   - Lenient mode cannot distinguish "malformed" from "deliberately
//     absent"; enable strict mode whenever the source is curated.
func WithStrictCells() Option {
	return func(o *Options) { o.strictCells = true }
}

// gatherOptions applies user setters on top of defaults.
// Last-writer-wins; stable for a given sequence. Complexity: O(k).
func gatherOptions(user ...Option) Options {
	o := Options{strictCells: DefaultStrictCells}
	for _, set := range user {
		set(&o)
	}

	return o
}
