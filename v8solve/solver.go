package v8solve

import (
	"github.com/xtaci/statecrack/rngtypes"
	"github.com/xtaci/statecrack/smtbv"
	"github.com/xtaci/statecrack/xorshift128plus"
)

// Solver recovers a xorshift128+ state from floats delivered in V8's
// cache-LIFO order, tolerating refills it never directly observes.
// Solver implements rngtypes.FloatSolver.
type Solver struct {
	*engine
	converter xorshift128plus.Converter
	observed  []float64
}

// NewSolver returns a Solver for V8's modern division-based float
// conversion.
func NewSolver() *Solver {
	return &Solver{engine: newEngine(), converter: xorshift128plus.DivisionConverter{}}
}

// NewLegacySolver returns a Solver for V8's older binary-cast float
// conversion.
func NewLegacySolver() *Solver {
	return &Solver{engine: newEngine(), converter: xorshift128plus.BinaryCastConverter{}}
}

// peek returns the float the current concrete candidate predicts next.
func (s *Solver) peek() float64 {
	return s.converter.ToDouble(s.s0Val)
}

func (s *Solver) matches(v float64) bool {
	return s.peek() == v
}

// addConstraint pins the observation's known bits against the symbolic
// s0 and rotates the symbolic window one step further back.
func (s *Solver) addConstraint(v float64) {
	shift := s.converter.IgnoredBits()
	knownBits := s.converter.FromDouble(v) >> uint(shift)
	s.sess.Assert(smtbv.Eq(smtbv.Lshr(s.s0Sym, s.sess.Value(uint64(shift), bits64)), s.sess.Value(knownBits, bits64)))
	s.rotateSymbolic()
}

// dropOldestObservation discards the oldest buffered observation and
// replays every remaining one against a freshly reset symbolic window.
func (s *Solver) dropOldestObservation() {
	s.resetSymbolic()
	s.observed = s.observed[1:]
	for _, v := range s.observed {
		s.addConstraint(v)
	}
}

// AddValue feeds the next observed float, advancing the status machine
// of spec.md §4.6.
func (s *Solver) AddValue(v float64) error {
	if s.status == rngtypes.StatusNotSolvable {
		return rngtypes.ErrNotSolvable
	}
	s.observed = append(s.observed, v)
	switch s.status {
	case rngtypes.StatusSolving:
		return s.handleSolving(v)
	case rngtypes.StatusCacheRefilledWhileSolving:
		return s.handleCacheRefilledWhileSolving(v)
	case rngtypes.StatusSolvedBeforeCacheRefill:
		return s.handleSolvedBeforeCacheRefill(v)
	case rngtypes.StatusSolved:
		return s.handleSolved(v)
	default:
		return rngtypes.ErrNotSolvable
	}
}

func (s *Solver) handleSolving(v float64) error {
	if s.matches(v) {
		s.rotateConcrete()
		s.status = rngtypes.StatusSolvedBeforeCacheRefill
		return nil
	}
	s.addConstraint(v)
	sat, err := s.sess.Sat()
	if err != nil || !sat {
		s.status = rngtypes.StatusCacheRefilledWhileSolving
		return nil
	}
	if err := s.updateConcreteFromModel(); err != nil {
		s.status = rngtypes.StatusNotSolvable
		return rngtypes.ErrNotSolvable
	}
	return nil
}

func (s *Solver) handleCacheRefilledWhileSolving(v float64) error {
	if s.matches(v) {
		s.rotateConcrete()
		s.cacheRefillCounter = cacheRefillSize - len(s.observed) + 1
		s.status = rngtypes.StatusSolved
		return nil
	}
	s.addConstraint(v)
	for {
		sat, err := s.sess.Sat()
		if err == nil && sat {
			break
		}
		if len(s.observed) <= 1 {
			s.status = rngtypes.StatusNotSolvable
			return rngtypes.ErrNotSolvable
		}
		s.dropOldestObservation()
	}
	if err := s.updateConcreteFromModel(); err != nil {
		s.status = rngtypes.StatusNotSolvable
		return rngtypes.ErrNotSolvable
	}
	return nil
}

func (s *Solver) handleSolvedBeforeCacheRefill(v float64) error {
	if s.matches(v) {
		s.rotateConcrete()
		return nil
	}
	s.simulateCacheRefill()
	s.status = rngtypes.StatusSolved
	if !s.matches(v) {
		s.status = rngtypes.StatusNotSolvable
		return rngtypes.ErrNotSolvable
	}
	s.rotateConcrete()
	return nil
}

func (s *Solver) handleSolved(v float64) error {
	s.cacheRefillCounter--
	if s.cacheRefillCounter == 0 {
		s.simulateCacheRefill()
	}
	if s.matches(v) {
		s.rotateConcrete()
		return nil
	}
	s.status = rngtypes.StatusNotSolvable
	return rngtypes.ErrNotSolvable
}

// PredictNext returns the next float the live engine would produce,
// simulating a cache refill transparently when the countdown expires.
func (s *Solver) PredictNext() (float64, error) {
	switch s.status {
	case rngtypes.StatusSolving, rngtypes.StatusCacheRefilledWhileSolving:
		return 0, rngtypes.ErrNotEnoughData
	case rngtypes.StatusSolvedBeforeCacheRefill:
		result := s.peek()
		s.rotateConcrete()
		return result, nil
	case rngtypes.StatusSolved:
		s.cacheRefillCounter--
		if s.cacheRefillCounter == 0 {
			s.simulateCacheRefill()
		}
		result := s.peek()
		s.rotateConcrete()
		return result, nil
	default:
		return 0, rngtypes.ErrNotSolvable
	}
}
