// Package smtbv wraps github.com/aclements/go-z3 into the narrow
// bit-vector session the two SMT-based solvers (mt19937's float solver
// and v8solve) need: constant/constraint construction, a sat/unsat/
// unknown check that treats "unknown" as unsat per spec.md §5, and
// push/pop checkpointing for the "drop oldest observation and retry"
// control flow of the V8 solver (§4.6, §9).
//
// The process-wide Z3 configuration (parallel search enabled, a 10s
// per-check timeout) is set exactly once via Init, matching the
// "global configuration, read thereafter" resource model of spec.md §5.
package smtbv

import (
	"sync"

	"github.com/aclements/go-z3/z3"
	"github.com/pkg/errors"
)

var initOnce sync.Once

// Init configures the process-wide Z3 parameters recommended by
// spec.md §5: internal search parallelism enabled, and a 10s timeout per
// check. Safe to call more than once; only the first call has effect.
func Init() {
	initOnce.Do(func() {
		cfg := z3.NewContextConfig()
		cfg.SetParamValue("parallel.enable", "true")
		cfg.SetParamValue("timeout", "10000")
		defaultConfig = cfg
	})
}

// defaultConfig is the process-wide context configuration installed by
// Init. NewSession calls Init before creating its context, so every
// session is built with this configuration.
var defaultConfig *z3.ContextConfig

// BV is a 64-bit-or-narrower symbolic bit-vector term.
type BV = z3.BV

// Bool is a symbolic boolean term (the result of a bit-vector
// comparison such as Eq).
type Bool = z3.Bool

// Session owns one Z3 context and one incremental solver instance. It is
// not safe for concurrent use; each rngsolve solver instance owns its
// own Session exclusively, per spec.md §5's "nothing is shared across
// solver instances" rule.
type Session struct {
	ctx    *z3.Context
	solver *z3.Solver
}

// NewSession creates a fresh incremental solving session.
func NewSession() *Session {
	Init()
	ctx := z3.NewContext(defaultConfig)
	return &Session{
		ctx:    ctx,
		solver: z3.NewSolver(ctx),
	}
}

// Const declares a free bit-vector constant of the given width.
func (s *Session) Const(name string, bits int) BV {
	return s.ctx.Const(z3.WithName(name), s.ctx.BVSort(bits)).(BV)
}

// Value builds a concrete bit-vector literal of the given width.
func (s *Session) Value(v uint64, bits int) BV {
	return s.ctx.FromBigInt(newBigInt(v), s.ctx.BVSort(bits)).(BV)
}

// Assert adds a constraint to the session's solver.
func (s *Session) Assert(b Bool) {
	s.solver.Assert(b)
}

// Checkpoint marks the current constraint set so it can be restored by
// Rollback, backing the "drop oldest observation" control flow: the
// caller rolls back, then replays every observation but the oldest.
func (s *Session) Checkpoint() {
	s.solver.Push()
}

// Rollback restores the constraint set to the last Checkpoint.
func (s *Session) Rollback() {
	s.solver.Pop(1)
}

// Sat reports whether the current constraint set is satisfiable. A Z3
// "unknown" result (most commonly a timeout) is treated as unsatisfiable
// per spec.md §5's cancellation semantics: the caller cannot distinguish
// "proven impossible" from "gave up", and both trigger the same
// recovery path (drop-oldest-observation for the V8 solver, terminal
// NotSolvable for the MT SMT solver).
func (s *Session) Sat() (bool, error) {
	sat, err := s.solver.Check()
	if err != nil {
		return false, errors.Wrap(err, "z3 check")
	}
	return sat == z3.Sat, nil
}

// Eval extracts the concrete uint64 value a satisfying model assigns to
// bv. Only valid immediately after a Sat() call returned true.
func (s *Session) Eval(bv BV) (uint64, error) {
	model := s.solver.Model()
	val := model.Eval(bv, true)
	u, ok := val.(BV).AsUint64()
	if !ok {
		return 0, errors.New("model value is not a concrete uint64")
	}
	return u, nil
}

// Close releases the underlying Z3 context.
func (s *Session) Close() {
	s.ctx.Close()
}
