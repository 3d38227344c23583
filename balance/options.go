// Package balance: functional configuration for the Engine and the strategy
// selector. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package balance

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the node count at or above which
	// CountOptimized switches from the sequential to the parallel chunked
	// path. At n=500 the candidate-triple space exceeds 20 million
	// (C(500,3) ≈ 2.07e7), where worker fan-out overhead pays off.
	// Purely a performance knob: both paths produce identical Counts.
	DefaultParallelThreshold = 500

	// DefaultWorkers of 0 means "one worker per available CPU"
	// (runtime.GOMAXPROCS at call time).
	DefaultWorkers = 0

	// DefaultValidateNaNInf toggles strict finite-value validation at Load.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "balance: WithWorkers: workers must be >= 1"
	panicThresholdInvalid = "balance: WithParallelThreshold: threshold must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers           int  // >= 1 after resolution; DefaultWorkers
	parallelThreshold int  // >= 0; DefaultParallelThreshold
	validateNaNInf    bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithWorkers fixes the size of the parallel worker pool.
// Inputs: k >= 1. Panics on k < 1 (programmer error).
// Complexity: O(1).
//
// Notes:
//   - Worker count is a tuning detail, never a correctness concern: any k
//     produces Counts identical to the sequential path.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithParallelThreshold sets the node count at which CountOptimized prefers
// the parallel chunked path. 0 means "always parallel".
// Inputs: n >= 0. Panics on n < 0 (programmer error).
// Complexity: O(1).
//
// Notes:
//   - Recalibrate freely for your hardware; output is unaffected.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithNoValidateNaNInf disables finite-value validation at Load (use with care).
// Non-finite weights then reach SignOf, which maps NaN to 0 (no edge) and
// ±Inf to ±1. Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided setters on top of defaults and
// finalizes derived invariants (workers resolved to a concrete count).
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
		validateNaNInf:    DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	// Resolve the "per-CPU" default to a concrete pool size exactly once.
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
