package mt19937

import "github.com/xtaci/statecrack/rngtypes"

// Solver recovers an MT19937 state from 624 consecutive 32-bit draws by
// algebraically untempering each one, then validates every subsequent
// draw against a live Generator seeded with the recovered state.
//
// Solver implements rngtypes.IntSolver.
type Solver struct {
	status rngtypes.SolverStatus
	buffer []uint32
	live   *Generator
}

// NewSolver returns a Solver ready to accept 32-bit draws.
func NewSolver() *Solver {
	return &Solver{status: rngtypes.StatusSolving}
}

// Status reports the solver's current state.
func (s *Solver) Status() rngtypes.SolverStatus {
	return s.status
}

// AddValue feeds the next observed 32-bit draw. While SOLVING, values
// are buffered (untempered) until 624 have arrived, at which point the
// recovered state is installed and status becomes SOLVED. Once SOLVED,
// every subsequent value is validated against the live generator; the
// first mismatch is terminal.
func (s *Solver) AddValue(v uint64) error {
	switch s.status {
	case rngtypes.StatusSolving:
		s.buffer = append(s.buffer, untemper(uint32(v)))
		if len(s.buffer) == n {
			var words [n]uint32
			copy(words[:], s.buffer)
			s.live = FromState(State{Words: words, Index: n})
			s.status = rngtypes.StatusSolved
		}
		return nil
	case rngtypes.StatusSolved:
		if s.live.Uint32() != uint32(v) {
			s.status = rngtypes.StatusNotSolvable
			return rngtypes.ErrNotSolvable
		}
		return nil
	default:
		return rngtypes.ErrNotSolvable
	}
}

// PredictNext returns the next gen_uint32() the live generator would
// produce.
func (s *Solver) PredictNext() (uint64, error) {
	switch s.status {
	case rngtypes.StatusSolving:
		return 0, rngtypes.ErrNotEnoughData
	case rngtypes.StatusSolved:
		return uint64(s.live.Uint32()), nil
	default:
		return 0, rngtypes.ErrNotSolvable
	}
}
