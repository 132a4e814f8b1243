package v8solve

import (
	"github.com/xtaci/statecrack/rngtypes"
	"github.com/xtaci/statecrack/smtbv"
	"github.com/xtaci/statecrack/xorshift128plus"
)

// IntSolver recovers a xorshift128+ state from integer draws of the
// form floor(r * Multiplier), the variant of spec.md §4.6 for engines
// that project Math.random() into an integer range rather than
// delivering the float directly. It shares every status transition
// with Solver; only the per-observation constraint derivation differs,
// since a single integer pins down a variable number of leading state
// bits instead of a fixed shift.
// IntSolver implements rngtypes.IntSolver.
type IntSolver struct {
	*engine
	converter  xorshift128plus.DivisionConverter
	multiplier uint64
	observed   []uint64
}

// NewIntSolver returns an IntSolver for observations of the form
// floor(r * multiplier).
func NewIntSolver(multiplier uint64) *IntSolver {
	return &IntSolver{engine: newEngine(), multiplier: multiplier}
}

func (s *IntSolver) peek() uint64 {
	r := s.converter.ToDouble(s.s0Val)
	return uint64(r * float64(s.multiplier))
}

func (s *IntSolver) matches(v uint64) bool {
	return s.peek() == v
}

// addConstraint derives the number of leading state bits common to
// from_double(n/M) and from_double((n+1)/M) and asserts equality of
// exactly those bits, since a single integer observation only pins
// down a state prefix whose width depends on how close n/M and
// (n+1)/M land to a converter boundary.
func (s *IntSolver) addConstraint(v uint64) {
	lower := s.converter.FromDouble(float64(v) / float64(s.multiplier))
	upper := s.converter.FromDouble(float64(v+1) / float64(s.multiplier))
	shift := s.converter.IgnoredBits()
	for (lower >> uint(shift)) != (upper >> uint(shift)) {
		shift++
	}
	s.sess.Assert(smtbv.Eq(smtbv.Lshr(s.s0Sym, s.sess.Value(uint64(shift), bits64)), s.sess.Value(lower>>uint(shift), bits64)))
	s.rotateSymbolic()
}

func (s *IntSolver) dropOldestObservation() {
	s.resetSymbolic()
	s.observed = s.observed[1:]
	for _, v := range s.observed {
		s.addConstraint(v)
	}
}

// AddValue feeds the next observed integer draw.
func (s *IntSolver) AddValue(v uint64) error {
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

func (s *IntSolver) handleSolving(v uint64) error {
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

func (s *IntSolver) handleCacheRefilledWhileSolving(v uint64) error {
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

func (s *IntSolver) handleSolvedBeforeCacheRefill(v uint64) error {
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

func (s *IntSolver) handleSolved(v uint64) error {
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

// PredictNext returns the next floor(r * multiplier) draw.
func (s *IntSolver) PredictNext() (uint64, error) {
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
