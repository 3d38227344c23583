// Package balance counts and classifies triads in signed networks
// according to social-balance theory (Easley & Kleinberg, 2010).
//
// What:
//
//   - SignOf / SignMatrix: one-pass ternary classification of edge weights
//     (+1 positive, -1 negative, 0 absent), derived from a dense adjacency.
//   - Counts: four mutually exclusive triad buckets (3/2/1/0 positive edges)
//     with Stable, Unstable and Total views and a commutative Merge.
//   - CountSequential / CountParallelChunked: the enumeration engine — a
//     canonical i<j<k triple loop with edge pruning, and a data-parallel
//     chunked variant guaranteed to produce identical results.
//   - Engine: a lifecycle facade owning matrix, signs, labels and the most
//     recent Counts (Load → Run → query/report).
//
// Why:
//
//   - Balance theory: triads with 3 or 1 positive edges are socially stable
//     ("friend of a friend", "enemy of my enemy"); triads with 2 or 0
//     positive edges are unstable and tend to resolve.
//   - Signed triad censuses are a standard measure in social-network and
//     systems-biology pipelines.
//
// Complexity:
//
//   - Sign derivation: O(n²), Memory: O(n²).
//   - Counting: O(n³) candidate triples worst case, heavily pruned by the
//     missing-edge skip; Memory: O(1) beyond the sign matrix
//     (plus O(workers) accumulators on the parallel path).
//
// Determinism:
//
//   - Counts form a commutative monoid under Merge with the zero value as
//     identity, so any partitioning of the outer index space reduces to the
//     same result: CountParallelChunked == CountSequential for every input
//     and every worker count.
//
// Numeric policy:
//
//   - Engine.Load validates finiteness by default (matrix.ErrNaNInf); with
//     WithNoValidateNaNInf, non-finite weights fall through to SignOf, which
//     maps NaN to 0 (no edge) and ±Inf to ±1.
//
// Errors:
//
//   - Counting never fails. Load surfaces the matrix package sentinels
//     (ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf).
package balance
