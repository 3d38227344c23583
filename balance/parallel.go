// Package balance: the parallel chunked triad counter.

package balance

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CountParallelChunked produces the identical Counts as CountSequential by
// partitioning the outer index range [0, n) across a pool of workers.
//
// Design:
//   - Workers claim outer indices i from a shared atomic cursor, one at a
//     time. Row i's inner double loop shrinks as i grows ((n-i-1)(n-i-2)/2
//     candidate triples), so cursor-based claiming self-balances the
//     triangular workload without any static chunk tuning.
//   - Each worker accumulates into a private Counts initialized to the
//     monoid identity; the SignMatrix is shared read-only, so there is no
//     data race and no locking on the matrix itself.
//   - The only synchronization points are the cursor increments and the
//     final reduction: after the errgroup join barrier, per-worker partials
//     merge into one Counts. Merge is commutative and associative, so the
//     merge order is irrelevant — for ANY partitioning,
//     CountParallelChunked(s, k) == CountSequential(s).
//
// The inner loop body intentionally duplicates the sequential traversal
// (same reads, same prunes) rather than sharing iteration state; only the
// per-triple classification step is shared. See sequential.go.
//
// workers < 1 selects one worker per available CPU. Never fails; counting
// is a pure bounded computation with no cancellation semantics.
//
// Complexity: O(n³/workers) per worker worst case, Memory: O(workers).
func CountParallelChunked(s *SignMatrix, workers int) Counts {
	var total Counts
	if s == nil {
		return total
	}
	n := s.n

	opts := gatherOptions() // resolves the per-CPU default deterministically
	if workers >= 1 {
		opts.workers = workers
	}
	if opts.workers > n && n > 0 {
		opts.workers = n // more workers than rows would only idle
	}
	if opts.workers < 1 {
		opts.workers = 1
	}

	partials := make([]Counts, opts.workers)
	var cursor atomic.Int64

	var g errgroup.Group
	for w := 0; w < opts.workers; w++ {
		w := w // shadow: per-iteration copy for the closure (pre-Go 1.22 loopvar semantics)
		g.Go(func() error {
			var local Counts
			for {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					break
				}

				iOff := i * n
				for j := i + 1; j < n; j++ {
					ij := s.signs[iOff+j]
					if ij == 0 {
						continue
					}

					jOff := j * n
					for k := j + 1; k < n; k++ {
						ik := s.signs[iOff+k]
						jk := s.signs[jOff+k]
						if ik == 0 || jk == 0 {
							continue
						}

						local.bump(posEdges(ij, ik, jk))
					}
				}
			}
			partials[w] = local

			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is purely the join barrier

	for _, p := range partials {
		total.Merge(p)
	}

	return total
}
