package xorshift128plus

import "github.com/xtaci/statecrack/bitops"

// Converter is a bijection (modulo its ignored low bits) between a
// xorshift128+ state's high bits and a double in [0, 1).
type Converter interface {
	// IgnoredBits is the number of low bits of s0 this converter
	// discards; only the upper 64-IgnoredBits bits are recoverable from
	// a single observed double.
	IgnoredBits() int
	// ToDouble converts a state word to the double V8 would deliver.
	ToDouble(s0 uint64) float64
	// FromDouble recovers the state bits a double was derived from; the
	// ignored low bits come back as zero.
	FromDouble(v float64) uint64
}

const twoPow53 = 1 << 53

// DivisionConverter is V8's modern conversion: the upper 53 bits of s0,
// treated as an integer and divided by 2^53.
type DivisionConverter struct{}

// IgnoredBits discards the low 11 bits of s0.
func (DivisionConverter) IgnoredBits() int { return 11 }

// ToDouble divides the upper 53 bits of s0 by 2^53.
func (DivisionConverter) ToDouble(s0 uint64) float64 {
	upper53 := s0 >> 11
	return float64(upper53) / float64(twoPow53)
}

// FromDouble inverts ToDouble; the low 11 bits of the result are zero.
func (DivisionConverter) FromDouble(v float64) uint64 {
	upper53 := uint64(v * float64(twoPow53))
	return (upper53 << 11) & bitops.Mask64
}

// BinaryCastConverter is V8's legacy conversion: the upper 52 bits of
// s0, OR'd with the bit pattern of 1.0 and reinterpreted as a double,
// then shifted down into [0, 1) by subtracting 1.0.
type BinaryCastConverter struct{}

// IgnoredBits discards the low 12 bits of s0.
func (BinaryCastConverter) IgnoredBits() int { return 12 }

// ToDouble packs the upper 52 bits of s0 into [1, 2) and subtracts 1.
func (BinaryCastConverter) ToDouble(s0 uint64) float64 {
	upper52 := s0 >> 12
	bits := upper52 | bitops.OneBits
	return bitops.Float64FromBits(bits) - 1.0
}

// FromDouble inverts ToDouble; the low 12 bits of the result are zero.
func (BinaryCastConverter) FromDouble(v float64) uint64 {
	bits := bitops.Float64Bits(v + 1.0)
	upper52 := bits &^ bitops.OneBits
	return (upper52 << 12) & bitops.Mask64
}
