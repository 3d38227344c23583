// Package balance: the Counts accumulator.

package balance

// Counts is the triad census of a signed network: for every unordered triple
// of distinct nodes whose three pairwise edges are all present, exactly one
// bucket is incremented according to how many of the three edges are
// positive. The four buckets are mutually exclusive and exhaustive.
//
// Counts forms a commutative monoid under Merge with the zero value as
// identity — the property that makes chunked parallel reduction
// correctness-preserving.
type Counts struct {
	// ThreePositive counts triads with 3 positive edges (all friends).
	ThreePositive uint64
	// TwoPositive counts triads with 2 positive, 1 negative edge.
	TwoPositive uint64
	// OnePositive counts triads with 1 positive, 2 negative edges.
	OnePositive uint64
	// ZeroPositive counts triads with 3 negative edges (all enemies).
	ZeroPositive uint64
}

// Stable returns the number of balanced triads (3 positive or 1 positive).
// Complexity: O(1).
func (c Counts) Stable() uint64 { return c.ThreePositive + c.OnePositive }

// Unstable returns the number of unbalanced triads (2 positive or 0 positive).
// Complexity: O(1).
func (c Counts) Unstable() uint64 { return c.TwoPositive + c.ZeroPositive }

// Total returns the number of counted triads across all four buckets.
// Never exceeds MaxTriads(n). Complexity: O(1).
func (c Counts) Total() uint64 {
	return c.ThreePositive + c.TwoPositive + c.OnePositive + c.ZeroPositive
}

// IsZero reports whether c is the monoid identity (no triads counted).
// Complexity: O(1).
func (c Counts) IsZero() bool { return c == Counts{} }

// Merge adds other into c pointwise. Commutative and associative, with the
// zero Counts as identity; merge order between worker partials never affects
// the final census. Complexity: O(1).
func (c *Counts) Merge(other Counts) {
	c.ThreePositive += other.ThreePositive
	c.TwoPositive += other.TwoPositive
	c.OnePositive += other.OnePositive
	c.ZeroPositive += other.ZeroPositive
}

// bump increments the bucket matching the positive-edge count of one triple.
// This is the single shared classification step between the sequential and
// parallel traversals; the loop bodies themselves stay duplicated per
// strategy to keep each hot path self-contained and inlineable.
func (c *Counts) bump(pos int) {
	switch pos {
	case 3:
		c.ThreePositive++
	case 2:
		c.TwoPositive++
	case 1:
		c.OnePositive++
	case 0:
		c.ZeroPositive++
	}
}

// posEdges counts how many of the three pairwise signs are strictly positive.
// Callers guarantee all three signs are non-zero. Complexity: O(1).
func posEdges(ij, ik, jk Sign) int {
	pos := 0
	if ij > 0 {
		pos++
	}
	if ik > 0 {
		pos++
	}
	if jk > 0 {
		pos++
	}

	return pos
}

// MaxTriads returns C(n,3), the number of candidate triples among n nodes —
// the ceiling for Counts.Total, reached exactly when the induced sign matrix
// has no zero off-diagonal entry (a complete signed graph).
// Complexity: O(1).
func MaxTriads(n int) uint64 {
	if n < 3 {
		return 0
	}

	return uint64(n) * uint64(n-1) * uint64(n-2) / 6
}
