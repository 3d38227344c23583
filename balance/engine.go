// Package balance: the Engine lifecycle facade.

package balance

import (
	"fmt"

	"github.com/katalvlaran/triad/matrix"
)

// Engine owns one signed network and its derived analysis state: the dense
// adjacency, the sign matrix, the index-aligned node labels and the most
// recently computed Counts.
//
// Lifecycle (three states, two transitions):
//
//	Empty ──Load──▶ Loaded ──Run──▶ Counted
//	                  ▲  │              │
//	                  └──┴────Load──────┘
//
// Load always recomputes signs and discards prior counts; Run (re)counts the
// current matrix. Querying Counts before any Run returns the zero value, not
// an error — a deliberate, documented default. There is no incremental
// update: reloading fully replaces all owned state.
//
// Engine is a plain owned aggregate: no global registry, no background
// goroutines, not safe for concurrent mutation (the counting paths
// themselves fan out internally over read-only state).
type Engine struct {
	adj    *matrix.Dense // owned after Load; treated as immutable
	signs  *SignMatrix   // derived from adj at Load; read-only
	labels []string      // index-aligned with matrix rows/columns
	counts Counts        // census of the current matrix; zero until Run
	opts   Options
}

// New constructs an empty Engine with the resolved options.
// Complexity: O(1).
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Load populates the engine with an adjacency matrix and its node labels,
// moving any state to Loaded.
// Stage 1 (Validate): non-nil, square, one label per row, finite values
// (unless WithNoValidateNaNInf).
// Stage 2 (Execute): take ownership of m, zero its diagonal, derive signs.
// Stage 3 (Finalize): replace labels, reset counts to the zero value.
//
// Ownership: the engine takes m as-is (no defensive copy, matching the
// zero-hidden-work policy); callers must not mutate m afterwards.
//
// Complexity: O(n²). Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch (label misalignment — rejected rather than
// truncated), matrix.ErrNaNInf.
func (e *Engine) Load(m *matrix.Dense, labels []string) error {
	// Validate before touching engine state: a failed Load must leave the
	// previous state intact.
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("balance.Load: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("balance.Load: %w", err)
	}
	if err := matrix.ValidateLabelCount(m, labels); err != nil {
		return fmt.Errorf("balance.Load: %w", err)
	}
	if e.opts.validateNaNInf {
		if err := matrix.ValidateFinite(m); err != nil {
			return fmt.Errorf("balance.Load: %w", err)
		}
	}

	// Self-loops never participate in triads.
	_ = m.ZeroDiagonal() // square already validated

	signs, err := SignsOf(m)
	if err != nil {
		return fmt.Errorf("balance.Load: %w", err)
	}

	e.adj = m
	e.signs = signs
	e.labels = append([]string(nil), labels...)
	e.counts = Counts{}

	return nil
}

// LoadRows is a convenience Load from a [][]float64 literal (testing,
// embedding). A nil label slice auto-generates "Node0".."Node{n-1}".
// Complexity: O(n²). Errors: matrix.ErrRaggedRows plus everything Load returns.
func (e *Engine) LoadRows(rows [][]float64, labels []string) error {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return fmt.Errorf("balance.LoadRows: %w", err)
	}
	if labels == nil {
		labels = make([]string, len(rows))
		for i := range labels {
			labels[i] = fmt.Sprintf("Node%d", i)
		}
	}

	return e.Load(m, labels)
}

// Run counts the triads of the currently loaded matrix via the strategy
// selector, stores the census and returns it, moving Loaded/Counted to
// Counted. On an Empty engine it is a no-op returning the zero Counts.
// Complexity: O(n³) worst case.
func (e *Engine) Run() Counts {
	e.counts = e.CountOptimized()

	return e.counts
}

// Counts returns the census of the most recent Run — the zero value if Run
// has not happened since the last Load. Complexity: O(1).
func (e *Engine) Counts() Counts { return e.counts }

// NodeCount returns the number of nodes in the loaded network (0 when Empty).
// Complexity: O(1).
func (e *Engine) NodeCount() int {
	if e.signs == nil {
		return 0
	}

	return e.signs.n
}

// Labels returns the node labels, index-aligned with matrix rows/columns.
// The returned slice is the engine's own; treat it as read-only.
// Complexity: O(1).
func (e *Engine) Labels() []string { return e.labels }

// CountSequential runs the single-threaded counter over the loaded signs.
// Read-only; callable in any lifecycle state (Empty yields zero Counts);
// does NOT store the result — use Run for that.
func (e *Engine) CountSequential() Counts { return CountSequential(e.signs) }

// CountParallelChunked runs the chunked parallel counter with the engine's
// configured worker pool. Read-only; result identical to CountSequential.
func (e *Engine) CountParallelChunked() Counts {
	return CountParallelChunked(e.signs, e.opts.workers)
}

// CountOptimized picks a strategy by network size: parallel at or above the
// configured threshold, sequential below. A pure value-based branch — both
// paths stay available and produce identical Counts for the same input.
func (e *Engine) CountOptimized() Counts {
	if e.NodeCount() >= e.opts.parallelThreshold {
		return e.CountParallelChunked()
	}

	return e.CountSequential()
}
