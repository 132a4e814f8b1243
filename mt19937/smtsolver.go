package mt19937

import (
	"github.com/xtaci/statecrack/bitops"
	"github.com/xtaci/statecrack/rngtypes"
	"github.com/xtaci/statecrack/smtbv"
)

// minObservedFloats is the minimum number of 53-bit float draws needed
// to pin down 624 32-bit state words (two per float), with a small
// safety margin (spec.md §4.4: "implementer may require ⌈624/2⌉+a small
// safety margin") to keep the constraint system comfortably
// over-determined against numerical edge cases in the float derivation.
const minObservedFloats = n/2 + 8

// symbolicBits is the bit-vector width used for every symbolic MT word.
// 53 bits is wide enough to hold a 32-bit word and the tempered
// 26/27-bit concatenation the spec's float constraint computes without
// overflow.
const symbolicBits = 53

// FloatSolver recovers an MT19937 state from 53-bit float draws by SMT
// solving a symbolic model of the twist recurrence and tempered output,
// then (once solved) validates subsequent draws against a live
// Generator, the same way Solver does for 32-bit draws.
//
// FloatSolver implements rngtypes.FloatSolver.
type FloatSolver struct {
	status rngtypes.SolverStatus
	sess   *smtbv.Session
	words  []smtbv.BV // symbolic m[0..], two per observed float
	live   *Generator
}

// NewFloatSolver returns a FloatSolver ready to accept 53-bit floats.
func NewFloatSolver() *FloatSolver {
	return &FloatSolver{
		status: rngtypes.StatusSolving,
		sess:   smtbv.NewSession(),
	}
}

// Status reports the solver's current state.
func (s *FloatSolver) Status() rngtypes.SolverStatus {
	return s.status
}

// AddValue feeds the next observed 53-bit float. While SOLVING, two new
// symbolic words are appended per float and constrained; once enough
// floats have arrived the symbolic system is checked for
// satisfiability. Once SOLVED, every subsequent float is validated
// against the live generator.
func (s *FloatSolver) AddValue(v float64) error {
	switch s.status {
	case rngtypes.StatusSolving:
		return s.addObservation(v)
	case rngtypes.StatusSolved:
		if s.live.Float64() != v {
			s.status = rngtypes.StatusNotSolvable
			return rngtypes.ErrNotSolvable
		}
		return nil
	default:
		return rngtypes.ErrNotSolvable
	}
}

func (s *FloatSolver) addObservation(v float64) error {
	lo := len(s.words)
	hi := lo + 2
	for i := lo; i < hi; i++ {
		w := s.sess.Const(wordName(i), symbolicBits)
		s.sess.Assert(smtbv.Ule(w, s.sess.Value(bitops.Mask32, symbolicBits)))
		s.words = append(s.words, w)
		s.addTwistConstraint(i)
	}

	// Tempered concatenation: ((temper(m[2i]) >> 5) << 26) | (temper(m[2i+1]) >> 6) == round(f * 2^53)
	hiWord := temperSymbolic(s.sess, s.words[lo])
	loWord := temperSymbolic(s.sess, s.words[lo+1])
	hiPart := smtbv.Shl(smtbv.Lshr(hiWord, s.sess.Value(5, symbolicBits)), s.sess.Value(26, symbolicBits))
	loPart := smtbv.Lshr(loWord, s.sess.Value(6, symbolicBits))
	combined := smtbv.Or(hiPart, loPart)

	target := s.sess.Value(uint64(v*9007199254740992.0), symbolicBits)
	s.sess.Assert(smtbv.Eq(combined, target))

	if len(s.words)/2 < minObservedFloats {
		return nil
	}

	sat, err := s.sess.Sat()
	if err != nil || !sat {
		s.status = rngtypes.StatusNotSolvable
		return rngtypes.ErrNotSolvable
	}

	// The last n symbolic words are the recovered state vector: earlier
	// words only existed to constrain the twist recurrence up to this
	// point, the same way mersenne_twister_cracker.py's crack_from_random
	// takes mt = full_mt[-N:] rather than full_mt[:N].
	base := len(s.words) - n
	var words [n]uint32
	for i := 0; i < n; i++ {
		val, err := s.sess.Eval(s.words[base+i])
		if err != nil {
			s.status = rngtypes.StatusNotSolvable
			return rngtypes.ErrNotSolvable
		}
		words[i] = uint32(val)
	}
	s.live = FromState(State{Words: words, Index: n})
	s.status = rngtypes.StatusSolved
	return nil
}

// addTwistConstraint imposes the symbolic twist recurrence tying
// s.words[i] to earlier words once index i reaches 624, exactly
// mirroring Generator.twist. Must be called after s.words[i] itself has
// been appended.
func (s *FloatSolver) addTwistConstraint(i int) {
	if i < n {
		return
	}
	a := s.words[i-n]
	b := s.words[i-n+1]
	upper := smtbv.And(a, s.sess.Value(upperMask, symbolicBits))
	lower := smtbv.And(b, s.sess.Value(lowerMask, symbolicBits))
	y := smtbv.Or(upper, lower)

	feedback := s.words[i-n+m]
	shiftedY := smtbv.Lshr(y, s.sess.Value(1, symbolicBits))

	lsb := smtbv.And(y, s.sess.Value(1, symbolicBits))
	// -lsb (computed as ^lsb + 1) is all ones when lsb==1 and zero otherwise.
	negLsb := smtbv.Add(smtbv.Xor(lsb, s.sess.Value(1<<symbolicBits-1, symbolicBits)), s.sess.Value(1, symbolicBits))
	magic := smtbv.And(negLsb, s.sess.Value(matrixA, symbolicBits))
	// magic is 0 when lsb==0, 0x9908B0DF when lsb==1, mirroring
	// mag01[y & 1] without needing an if-then-else term.

	rhs := smtbv.Xor(smtbv.Xor(feedback, shiftedY), magic)
	s.sess.Assert(smtbv.Eq(s.words[i], rhs))
}

// temperSymbolic applies MT19937's tempering permutation to a symbolic
// word, mirroring temper() in temper.go exactly.
func temperSymbolic(sess *smtbv.Session, y smtbv.BV) smtbv.BV {
	u := sess.Value(temperU, symbolicBits)
	s7 := sess.Value(temperS, symbolicBits)
	t15 := sess.Value(temperT, symbolicBits)
	l18 := sess.Value(temperL, symbolicBits)
	b := sess.Value(uint64(temperB), symbolicBits)
	c := sess.Value(uint64(temperC), symbolicBits)

	y = smtbv.Xor(y, smtbv.And(smtbv.Lshr(y, u), sess.Value(bitops.Mask32, symbolicBits)))
	y = smtbv.Xor(y, smtbv.And(smtbv.Shl(y, s7), b))
	y = smtbv.Xor(y, smtbv.And(smtbv.Shl(y, t15), c))
	y = smtbv.Xor(y, smtbv.Lshr(y, l18))
	return y
}

// PredictNext returns the next gen_double() the live generator would
// produce.
func (s *FloatSolver) PredictNext() (float64, error) {
	switch s.status {
	case rngtypes.StatusSolving:
		return 0, rngtypes.ErrNotEnoughData
	case rngtypes.StatusSolved:
		return s.live.Float64(), nil
	default:
		return 0, rngtypes.ErrNotSolvable
	}
}

func wordName(i int) string {
	const letters = "0123456789"
	if i == 0 {
		return "m0"
	}
	digits := make([]byte, 0, 8)
	for i > 0 {
		digits = append([]byte{letters[i%10]}, digits...)
		i /= 10
	}
	return "m" + string(digits)
}
