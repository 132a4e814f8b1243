// Package v8solve implements the incremental solver for V8's
// xorshift128+ generator: a two-symbolic-variable rotation window fed
// one observation at a time, tolerant of the engine's 64-entry LIFO
// output cache and its periodic refills.
package v8solve

import (
	"github.com/xtaci/statecrack/rngtypes"
	"github.com/xtaci/statecrack/smtbv"
	"github.com/xtaci/statecrack/xorshift128plus"
)

// cacheRefillSize is V8's output cache batch size: 64 values generated
// per refill, delivered to callers in LIFO order.
const cacheRefillSize = 64

// bits64 is the bit-vector width every symbolic constant in this
// package uses.
const bits64 = 64

// engine holds the state-machine plumbing shared by the float-observing
// Solver and the integer-observing IntSolver: the symbolic rotation
// window (s0Sym, s1Sym), the concrete candidate (s0Val, s1Val) the
// model currently believes produced the next prediction, the cache
// refill countdown, and the single Z3 checkpoint used to replay
// observations after dropping the oldest one.
type engine struct {
	status             rngtypes.SolverStatus
	sess               *smtbv.Session
	s0Sym, s1Sym       smtbv.BV
	s0Val, s1Val       uint64
	cacheRefillCounter int
}

// newEngine opens a fresh Z3 session, declares the symbolic state pair,
// and pushes the one checkpoint every later "drop oldest observation"
// rolls back to.
func newEngine() *engine {
	sess := smtbv.NewSession()
	sess.Checkpoint()
	return &engine{
		status: rngtypes.StatusSolving,
		sess:   sess,
		s0Sym:  sess.Const("s0", bits64),
		s1Sym:  sess.Const("s1", bits64),
	}
}

// rotateConcrete steps the concrete candidate one observation further
// back in generation order, since observations arrive LIFO.
func (e *engine) rotateConcrete() {
	st := xorshift128plus.PreviousState(xorshift128plus.State{S0: e.s0Val, S1: e.s1Val})
	e.s0Val, e.s1Val = st.S0, st.S1
}

// simulateCacheRefill advances the concrete candidate 128 steps: 64 to
// account for the unseen remainder of the batch in progress, and 64
// more for the refill batch the engine generates next, per spec.md
// §4.6's "next pop after refill is the last of those 64" model.
func (e *engine) simulateCacheRefill() {
	st := xorshift128plus.Advance(xorshift128plus.State{S0: e.s0Val, S1: e.s1Val}, cacheRefillSize*2)
	e.s0Val, e.s1Val = st.S0, st.S1
	e.cacheRefillCounter = cacheRefillSize
}

// rotateSymbolic applies the same state transition as
// xorshift128plus.PreviousState, but to the symbolic pair, so each
// newly appended observation constrains the state one step further
// back than the last.
func (e *engine) rotateSymbolic() {
	oldS0, oldS1 := e.s0Sym, e.s1Sym
	newS1 := oldS0
	temp := smtbv.Xor(oldS1, smtbv.Xor(newS1, smtbv.Lshr(newS1, e.sess.Value(26, bits64))))
	temp = smtbv.Xor(temp, smtbv.Xor(smtbv.Lshr(temp, e.sess.Value(17, bits64)),
		smtbv.Xor(smtbv.Lshr(temp, e.sess.Value(34, bits64)), smtbv.Lshr(temp, e.sess.Value(51, bits64)))))
	newS0 := smtbv.Xor(temp, smtbv.Xor(smtbv.Shl(temp, e.sess.Value(23, bits64)), smtbv.Shl(temp, e.sess.Value(46, bits64))))
	e.s0Sym, e.s1Sym = newS0, newS1
}

// resetSymbolic rolls the solver back to its one checkpoint and
// re-declares fresh symbolic constants, the first step of replaying
// every observation but the oldest.
func (e *engine) resetSymbolic() {
	e.sess.Rollback()
	e.sess.Checkpoint()
	e.s0Sym = e.sess.Const("s0", bits64)
	e.s1Sym = e.sess.Const("s1", bits64)
}

// updateConcreteFromModel reads the current model's assignment to the
// symbolic pair into the concrete candidate. Only valid immediately
// after a Sat() call returned true.
func (e *engine) updateConcreteFromModel() error {
	v0, err := e.sess.Eval(e.s0Sym)
	if err != nil {
		return err
	}
	v1, err := e.sess.Eval(e.s1Sym)
	if err != nil {
		return err
	}
	e.s0Val, e.s1Val = v0, v1
	return nil
}

// Status reports the solver's current state.
func (e *engine) Status() rngtypes.SolverStatus {
	return e.status
}
