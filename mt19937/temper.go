package mt19937

import "github.com/xtaci/statecrack/bitops"

const (
	temperU, temperD = 11, uint32(bitops.Mask32)
	temperS, temperB = 7, 0x9D2C5680
	temperT, temperC = 15, 0xEFC60000
	temperL          = 18
)

// temper applies MT19937's four-step tempering permutation to a raw
// state word, producing the value actually returned to the caller.
func temper(y uint32) uint32 {
	y ^= (y >> temperU) & temperD
	y ^= (y << temperS) & temperB
	y ^= (y << temperT) & temperC
	y ^= y >> temperL
	return y
}

// untemper inverts temper, recovering the raw state word from an
// observed tempered draw. Each step is reversed in the opposite order it
// was applied: the last forward step (the plain right-shift by 18) first,
// down to the first forward step (the right-shift by 11) last.
func untemper(y uint32) uint32 {
	y = untemperRightShift(y, temperL, bitops.Mask32)
	y = untemperLeftShift(y, temperT, temperC)
	y = untemperLeftShift(y, temperS, temperB)
	y = untemperRightShift(y, temperU, temperD)
	return y
}

// untemperRightShift reverses a step of the form y ^= (y >> shift) &
// mask. A right shift moves high bits into low positions, so the
// topmost `shift` bits of the result are already correct in y itself;
// repeating the reconstruction ⌈32/shift⌉ times propagates that
// correctness all the way down to bit 0.
func untemperRightShift(y uint32, shift uint, mask uint32) uint32 {
	res := y
	iterations := bitops.CeilDiv(32, int(shift))
	for i := 0; i < iterations; i++ {
		res = y ^ ((res >> shift) & mask)
	}
	return res
}

// untemperLeftShift reverses a step of the form y ^= (y << shift) &
// mask, symmetric to untemperRightShift but propagating from the low
// bits upward.
func untemperLeftShift(y uint32, shift uint, mask uint32) uint32 {
	res := y
	iterations := bitops.CeilDiv(32, int(shift))
	for i := 0; i < iterations; i++ {
		res = y ^ ((res << shift) & mask)
	}
	return res
}
