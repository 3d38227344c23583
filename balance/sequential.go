// Package balance: the sequential triad counter.

package balance

// CountSequential enumerates every unordered triple of distinct indices
// (i, j, k) with i < j < k exactly once and classifies each triple that has
// all three pairwise edges present.
//
// Algorithm outline:
//  1. For each i, for each j > i, read sign(i,j). A zero sign disqualifies
//     every triple containing the (i,j) pair, so the whole k-loop is
//     skipped — this prune is what keeps sparse networks far below the
//     O(n³) worst case.
//  2. For each k > j, read sign(i,k) and sign(j,k); a zero on either skips
//     the triple.
//  3. Count the strictly positive signs among the three and bump the
//     matching bucket.
//
// The i<j<k ordering is canonical, so no triple is visited twice and the
// result carries no ordering sensitivity. Only the upper-index orientation
// of each pair is consulted: sign(i,j) with i<j, never sign(j,i). Asymmetric
// adjacency input is therefore read as if symmetric by construction.
//
// Pure, read-only over the shared SignMatrix; never fails; nil or sub-3-node
// input yields the zero Counts.
//
// Complexity: O(n³) worst case, Memory: O(1).
func CountSequential(s *SignMatrix) Counts {
	var counts Counts
	if s == nil {
		return counts
	}
	n := s.n

	for i := 0; i < n; i++ {
		iOff := i * n
		for j := i + 1; j < n; j++ {
			ij := s.signs[iOff+j]
			// No i–j edge: no triple containing this pair can be a triad.
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

				counts.bump(posEdges(ij, ik, jk))
			}
		}
	}

	return counts
}
