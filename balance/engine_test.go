package balance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/matrix"
)

// TestEngine_AllPositiveTriad: 3 nodes, all positive edges → one stable
// triad with 3 positive edges.
func TestEngine_AllPositiveTriad(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.ThreePositive)
	assert.Equal(t, uint64(1), c.Stable())
	assert.Equal(t, uint64(0), c.Unstable())
	assert.Equal(t, uint64(1), c.Total())
}

// TestEngine_AllNegativeTriad: 3 nodes, all negative edges → one unstable
// triad with 0 positive edges ("all enemies").
func TestEngine_AllNegativeTriad(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.ZeroPositive)
	assert.Equal(t, uint64(0), c.Stable())
	assert.Equal(t, uint64(1), c.Unstable())
}

// TestEngine_OnePositiveTriad: 1 positive, 2 negative → stable
// ("the enemy of my enemy is my friend").
func TestEngine_OnePositiveTriad(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, -1},
		{1, 0, -1},
		{-1, -1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.OnePositive)
	assert.Equal(t, uint64(1), c.Stable())
}

// TestEngine_TwoPositiveTriad: 2 positive, 1 negative → unstable
// ("two friends are enemies").
func TestEngine_TwoPositiveTriad(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1},
		{1, 0, -1},
		{1, -1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.TwoPositive)
	assert.Equal(t, uint64(1), c.Unstable())
}

// TestEngine_CompleteFourNodes: complete all-positive K4 → every candidate
// triple counts: ThreePositive == Total == C(4,3) == 4.
func TestEngine_CompleteFourNodes(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(4), c.ThreePositive)
	assert.Equal(t, balance.MaxTriads(4), c.Total(), "complete signed graph reaches C(n,3)")
}

// TestEngine_ZeroWeightRemovesTriples: a zero-weight pair removes every
// triple containing that pair from all buckets — zero is "no edge", never a
// third sign class.
func TestEngine_ZeroWeightRemovesTriples(t *testing.T) {
	// K4 all positive, then cut the 0–1 edge: the two triples {0,1,2} and
	// {0,1,3} vanish; {0,2,3} and {1,2,3} remain.
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(2), c.ThreePositive)
	assert.Equal(t, uint64(2), c.Total())
}

// TestEngine_WeightMagnitudeIrrelevant: only the sign matters, not the weight.
func TestEngine_WeightMagnitudeIrrelevant(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 0.0001, 250},
		{3.7, 0, -1e9},
		{42, -0.5, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.TwoPositive, "weights of any magnitude reduce to signs")
}

// TestEngine_DiagonalIgnored: non-zero diagonal entries (self-loops) are
// zeroed at Load and never create or destroy triads.
func TestEngine_DiagonalIgnored(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{9, 1, 1},
		{1, -9, 1},
		{1, 1, 9},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.ThreePositive)
	assert.Equal(t, uint64(1), c.Total())
}

// TestEngine_DirectedReading documents the upper-index orientation: the
// counter consults sign(i,j) for i<j only, so an asymmetric matrix is read
// as if symmetric by construction (lower triangle never inspected).
func TestEngine_DirectedReading(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1},
		{-1, 0, 1},
		{-1, -1, 0},
	}, nil))

	c := e.Run()
	assert.Equal(t, uint64(1), c.ThreePositive, "upper triangle is all positive")
	assert.Equal(t, uint64(0), c.ZeroPositive, "lower triangle must not be consulted")
}

// TestEngine_Lifecycle walks Empty → Loaded → Counted → reLoaded and checks
// the documented state at each step.
func TestEngine_Lifecycle(t *testing.T) {
	e := balance.New()

	// Empty: zero everything, counting is a no-op.
	assert.Equal(t, 0, e.NodeCount())
	assert.Nil(t, e.Labels())
	assert.True(t, e.Counts().IsZero(), "counts before any Run are the zero value")
	assert.True(t, e.Run().IsZero(), "Run on an Empty engine is a no-op")

	// Loaded: matrix and labels present, counts still zero.
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, []string{"A", "B", "C"}))
	assert.Equal(t, 3, e.NodeCount())
	assert.Equal(t, []string{"A", "B", "C"}, e.Labels())
	assert.True(t, e.Counts().IsZero(), "Load must not count")

	// Counted.
	c := e.Run()
	assert.Equal(t, c, e.Counts(), "Run stores what it returns")
	assert.Equal(t, uint64(1), c.Total())

	// Reload fully replaces state and discards prior counts.
	require.NoError(t, e.LoadRows([][]float64{
		{0, -1},
		{-1, 0},
	}, []string{"X", "Y"}))
	assert.Equal(t, 2, e.NodeCount())
	assert.Equal(t, []string{"X", "Y"}, e.Labels())
	assert.True(t, e.Counts().IsZero(), "reload discards the previous census")
	assert.True(t, e.Run().IsZero(), "2 nodes cannot form a triad")
}

// TestEngine_LoadErrors covers every Load rejection path and checks that a
// failed Load leaves previous state intact.
func TestEngine_LoadErrors(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, nil))
	e.Run()

	// Nil matrix.
	assert.ErrorIs(t, e.Load(nil, nil), matrix.ErrNilMatrix)

	// Non-square matrix.
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, e.Load(rect, []string{"a", "b"}), matrix.ErrNonSquare)

	// Label misalignment: rejected, never truncated.
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, e.Load(sq, []string{"only-one"}), matrix.ErrDimensionMismatch)

	// Non-finite weight under the default strict policy.
	dirty, err := matrix.FromRows([][]float64{
		{0, math.NaN()},
		{1, 0},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Load(dirty, []string{"a", "b"}), matrix.ErrNaNInf)

	// Ragged rows through LoadRows.
	assert.ErrorIs(t, e.LoadRows([][]float64{{1, 2}, {3}}, nil), matrix.ErrRaggedRows)

	// Previous state survived every failure above.
	assert.Equal(t, 3, e.NodeCount())
	assert.Equal(t, uint64(1), e.Counts().Total())
}

// TestEngine_NaNAsNoEdge: with validation disabled, a NaN weight behaves
// exactly like a zero weight (no edge) — the documented non-finite policy.
func TestEngine_NaNAsNoEdge(t *testing.T) {
	nan := math.NaN()

	lenient := balance.New(balance.WithNoValidateNaNInf())
	require.NoError(t, lenient.LoadRows([][]float64{
		{0, nan, 1, 1},
		{nan, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}, nil))

	reference := balance.New()
	require.NoError(t, reference.LoadRows([][]float64{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}, nil))

	assert.Equal(t, reference.Run(), lenient.Run(), "NaN and 0 must count identically")
}

// TestEngine_AutoLabels verifies LoadRows label generation.
func TestEngine_AutoLabels(t *testing.T) {
	e := balance.New()
	require.NoError(t, e.LoadRows([][]float64{
		{0, 1},
		{1, 0},
	}, nil))

	assert.Equal(t, []string{"Node0", "Node1"}, e.Labels())
}

// TestEngine_TotalNeverExceedsMaxTriads: census totals are bounded by
// C(n,3), with equality exactly on complete signed graphs.
func TestEngine_TotalNeverExceedsMaxTriads(t *testing.T) {
	// Patterned mixed-sign complete graph (no zero off-diagonal entries).
	n := 12
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				continue
			}
			if (i+j)%3 == 0 {
				rows[i][j] = -1
			} else {
				rows[i][j] = 1
			}
		}
	}

	e := balance.New()
	require.NoError(t, e.LoadRows(rows, nil))
	c := e.Run()
	assert.Equal(t, balance.MaxTriads(n), c.Total(), "complete graph: every candidate triple counts")

	// Now remove one edge: strictly below the ceiling.
	rows[0][1] = 0
	rows[1][0] = 0
	require.NoError(t, e.LoadRows(rows, nil))
	c = e.Run()
	assert.Less(t, c.Total(), balance.MaxTriads(n), "incomplete graph stays below C(n,3)")
	assert.Equal(t, balance.MaxTriads(n)-uint64(n-2), c.Total(), "one cut pair removes n-2 triples")
}

// TestOptions_PanicOnNonsense: option constructors panic on programmer error.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { balance.WithWorkers(0) })
	assert.Panics(t, func() { balance.WithWorkers(-3) })
	assert.Panics(t, func() { balance.WithParallelThreshold(-1) })
	assert.NotPanics(t, func() { balance.WithParallelThreshold(0) })
}
