// Package rngtypes holds the vocabulary shared by every concrete solver
// and by the rngsolve factory that constructs them: RngType, SolverStatus,
// the two disjoint value-typed solver interfaces, and the three error
// kinds. It lives apart from rngsolve so the concrete solver packages
// (mt19937, v8solve) can depend on it without a rngsolve -> solver ->
// rngsolve import cycle.
package rngtypes

import "github.com/pkg/errors"

// RngType identifies which generator a solver targets.
type RngType int

const (
	// MT19937 is CPython's generator, observed as 32-bit integer draws.
	MT19937 RngType = iota
	// V8 is V8's xorshift128+, observed as floats using the modern
	// division-based conversion.
	V8
	// V8Legacy is the same generator observed through the older
	// binary-cast conversion.
	V8Legacy
	// V8Int is V8's generator observed as ⌊r·Multiplier⌋ integers.
	V8Int
)

// String names the RngType the way the CLI's -t flag spells it.
func (t RngType) String() string {
	switch t {
	case MT19937:
		return "MT19937"
	case V8:
		return "V8"
	case V8Legacy:
		return "V8_LEGACY"
	case V8Int:
		return "V8_INT"
	default:
		return "UNKNOWN"
	}
}

// SolverStatus is the shared status vocabulary of §3: every solver
// reports one of these after each observation.
type SolverStatus int

const (
	// StatusSolving means insufficient information has been observed yet.
	StatusSolving SolverStatus = iota
	// StatusSolved means the state is determined and known to match the
	// live engine; predictions are safe across cache refills.
	StatusSolved
	// StatusSolvedBeforeCacheRefill is V8-only: a candidate state
	// matches all observations so far, but cache-refill alignment has
	// not yet been confirmed.
	StatusSolvedBeforeCacheRefill
	// StatusCacheRefilledWhileSolving is V8-only: a refill straddled the
	// observation window and the solver is dropping oldest observations
	// to re-align.
	StatusCacheRefilledWhileSolving
	// StatusNotSolvable is terminal: observations are inconsistent with
	// any possible state.
	StatusNotSolvable
)

// String names the status for logging.
func (s SolverStatus) String() string {
	switch s {
	case StatusSolving:
		return "SOLVING"
	case StatusSolved:
		return "SOLVED"
	case StatusSolvedBeforeCacheRefill:
		return "SOLVED_BEFORE_CACHE_REFILL"
	case StatusCacheRefilledWhileSolving:
		return "CACHE_REFILLED_WHILE_SOLVING"
	case StatusNotSolvable:
		return "NOT_SOLVABLE"
	default:
		return "UNKNOWN"
	}
}

// The three error kinds of spec.md §7. Kernels never raise; solvers
// raise only these, and the CLI (cmd/statecrack) maps them to exit
// codes. Callers should compare with errors.Is, since solvers may wrap
// these with additional context via errors.Wrap.
var (
	// ErrInvalidArgument signals a bad RngType, a missing required
	// option, or an unparseable input value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotEnoughData signals PredictNext called before the solver has
	// reached a solved status.
	ErrNotEnoughData = errors.New("not enough data")
	// ErrNotSolvable signals a terminal inconsistency between
	// observations and any possible generator state.
	ErrNotSolvable = errors.New("not solvable")
)

// IntSolver is the contract for solvers observing integer draws
// (MT19937, V8Int).
type IntSolver interface {
	Status() SolverStatus
	AddValue(v uint64) error
	PredictNext() (uint64, error)
}

// FloatSolver is the contract for solvers observing float draws in
// [0, 1) (V8, V8Legacy).
type FloatSolver interface {
	Status() SolverStatus
	AddValue(v float64) error
	PredictNext() (float64, error)
}
