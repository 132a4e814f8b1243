// Package rngsolve is the single entry point of spec.md §4.7: given an
// RngType (and, for V8_INT, a multiplier), it returns a solver
// implementing the matching value-typed contract. It holds no logic of
// its own beyond dispatch — every algorithm lives in mt19937, v8solve,
// or xorshift128plus.
package rngsolve

import (
	"github.com/pkg/errors"

	"github.com/xtaci/statecrack/mt19937"
	"github.com/xtaci/statecrack/rngtypes"
	"github.com/xtaci/statecrack/v8solve"
)

// floatFactories and intFactories are the static type->constructor
// tables of Design Note 9.1: dispatch is one map lookup, never a
// runtime walk of a class hierarchy.
var floatFactories = map[rngtypes.RngType]func() rngtypes.FloatSolver{
	rngtypes.V8:       func() rngtypes.FloatSolver { return v8solve.NewSolver() },
	rngtypes.V8Legacy: func() rngtypes.FloatSolver { return v8solve.NewLegacySolver() },
}

var intFactories = map[rngtypes.RngType]func(multiplier uint64) rngtypes.IntSolver{
	rngtypes.MT19937: func(uint64) rngtypes.IntSolver { return mt19937.NewSolver() },
	rngtypes.V8Int:   func(multiplier uint64) rngtypes.IntSolver { return v8solve.NewIntSolver(multiplier) },
}

// CreateFloat builds the solver for a float-observing RngType (V8,
// V8_LEGACY).
func CreateFloat(t rngtypes.RngType) (rngtypes.FloatSolver, error) {
	factory, ok := floatFactories[t]
	if !ok {
		return nil, errors.Wrapf(rngtypes.ErrInvalidArgument, "%s does not take float observations", t)
	}
	return factory(), nil
}

// CreateInt builds the solver for an integer-observing RngType
// (MT19937, V8_INT). multiplier is required and used only for V8_INT.
func CreateInt(t rngtypes.RngType, multiplier uint64) (rngtypes.IntSolver, error) {
	if t == rngtypes.V8Int && multiplier == 0 {
		return nil, errors.Wrap(rngtypes.ErrInvalidArgument, "V8_INT requires a positive multiplier")
	}
	factory, ok := intFactories[t]
	if !ok {
		return nil, errors.Wrapf(rngtypes.ErrInvalidArgument, "%s does not take integer observations", t)
	}
	return factory(multiplier), nil
}

// IsFloatType reports whether t's observations and predictions are
// floats (V8, V8_LEGACY) rather than integers.
func IsFloatType(t rngtypes.RngType) bool {
	_, ok := floatFactories[t]
	return ok
}
