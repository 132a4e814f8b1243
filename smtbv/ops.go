package smtbv

import "math/big"

// newBigInt adapts a uint64 literal to the *big.Int the go-z3 binding's
// FromBigInt constructor expects.
func newBigInt(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// Xor, Lshr, Shl, And, Or, Eq, Extract and ZeroExt are re-exported as
// free functions purely so call sites in mt19937 and v8solve read as
// "smtbv.Xor(a, b)" rather than reaching into the z3 package directly;
// they're otherwise thin passthroughs to the z3.BV methods of the same
// intent.
func Xor(a, b BV) BV { return a.Xor(b) }
func And(a, b BV) BV { return a.And(b) }
func Or(a, b BV) BV  { return a.Or(b) }
func Add(a, b BV) BV { return a.Add(b) }

// Shl is a logical left shift.
func Shl(a, shift BV) BV { return a.Lsh(shift) }

// Lshr is a logical (zero-filling) right shift, matching the spec's use
// of LShR rather than an arithmetic shift.
func Lshr(a, shift BV) BV { return a.Lshr(shift) }

// Eq builds the equality predicate used to pin an observation's known
// bits against a symbolic state word.
func Eq(a, b BV) Bool { return a.Eq(b) }

// Extract pulls bits [hi:lo] (inclusive) out of a wider bit-vector.
func Extract(a BV, hi, lo int) BV { return a.Extract(hi, lo) }

// ZeroExt widens a bit-vector by n zero bits.
func ZeroExt(a BV, n int) BV { return a.ZeroExt(n) }

// Ule is the unsigned less-than-or-equal predicate, used to constrain
// each symbolic MT word to the uint32 range within a wider bit-vector.
func Ule(a, b BV) Bool { return a.ULE(b) }
