// Package matrix provides dense, row-major storage for network adjacency
// data used across github.com/katalvlaran/triad.
//
// What:
//
//   - Dense wraps an r×c float64 matrix in a single flat slice, giving O(1)
//     element access and cache-friendly row scans.
//   - FromRows builds a Dense from a [][]float64 literal (testing, embedding).
//   - Validators centralize the shape and numeric-policy checks that the
//     counting core relies on (square shape, finite values, label alignment).
//
// Why:
//
//   - Triad enumeration reads the full n×n neighborhood of every node pair;
//     a dense flat layout is the right trade for small-to-medium networks
//     (O(V²) memory, O(1) lookups).
//
// Numeric policy:
//
//   - ValidateFinite rejects NaN and ±Inf. Callers that knowingly ingest
//     dirty data may skip the check and rely on the core's documented
//     non-finite sign policy instead.
//
// Errors:
//
//   - All failures are package-level sentinels (ErrInvalidDimensions,
//     ErrIndexOutOfBounds, ErrRaggedRows, ErrNonSquare, ErrNaNInf,
//     ErrDimensionMismatch, ErrNilMatrix), matched via errors.Is.
package matrix
