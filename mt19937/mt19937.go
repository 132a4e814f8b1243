// Package mt19937 implements the MT19937 variant used by CPython's
// random module: init_by_array seeding, the standard twist/temper
// transforms, the 53-bit float derivation, and (in solver.go /
// smtsolver.go) the two incremental solvers that recover its state from
// observed outputs.
package mt19937

import "github.com/xtaci/statecrack/bitops"

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908B0DF
	upperMask = 0x80000000
	lowerMask = 0x7FFFFFFF
)

// State is a snapshot of a Generator's internal state: the 624-word array
// plus the consumption index. Index == N means "fully consumed, twist on
// next draw".
type State struct {
	Words [n]uint32
	Index int
}

// Generator is a CPython-compatible MT19937 generator.
type Generator struct {
	state State
}

// NewFromSeed seeds a Generator the way CPython's random.Random(seed)
// does for integer seeds: negative seeds are negated, the magnitude is
// split into little-endian 32-bit limbs (a single zero limb if the
// magnitude is zero), and the limbs are fed to init_by_array.
func NewFromSeed(seed int64) *Generator {
	if seed < 0 {
		seed = -seed
	}
	key := seedLimbs(seed)
	g := &Generator{}
	g.initByArray(key)
	return g
}

// seedLimbs splits a non-negative seed into little-endian 32-bit limbs,
// returning a single zero limb for a zero seed.
func seedLimbs(seed int64) []uint32 {
	if seed == 0 {
		return []uint32{0}
	}
	var limbs []uint32
	u := uint64(seed)
	for u != 0 {
		limbs = append(limbs, uint32(u&bitops.Mask32))
		u >>= 32
	}
	return limbs
}

// initByArray is the reference init_by_array routine: it first runs the
// single-seed initializer with 19650218, then folds in the key array,
// then runs a final mixing pass. The post-seed invariant state[0] =
// 0x80000000 falls out of this algorithm automatically.
func (g *Generator) initByArray(key []uint32) {
	g.initGenrand(19650218)

	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		g.state.Words[i] = (g.state.Words[i] ^ ((g.state.Words[i-1] ^ (g.state.Words[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			g.state.Words[0] = g.state.Words[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		g.state.Words[i] = (g.state.Words[i] ^ ((g.state.Words[i-1] ^ (g.state.Words[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			g.state.Words[0] = g.state.Words[n-1]
			i = 1
		}
	}
	g.state.Words[0] = 0x80000000
	g.state.Index = n
}

// initGenrand is the classic single-seed MT19937 initializer, used as
// the first stage of init_by_array.
func (g *Generator) initGenrand(seed uint32) {
	g.state.Words[0] = seed
	for i := 1; i < n; i++ {
		g.state.Words[i] = 1812433253*(g.state.Words[i-1]^(g.state.Words[i-1]>>30)) + uint32(i)
	}
	g.state.Index = n
}

// twist refreshes the full state array; called once every N draws.
func (g *Generator) twist() {
	mag01 := [2]uint32{0, matrixA}
	w := &g.state.Words
	for i := 0; i < n; i++ {
		y := (w[i] & upperMask) | (w[(i+1)%n] & lowerMask)
		w[i] = w[(i+m)%n] ^ (y >> 1) ^ mag01[y&1]
	}
	g.state.Index = 0
}

// Uint32 returns the next tempered 32-bit draw.
func (g *Generator) Uint32() uint32 {
	if g.state.Index >= n {
		g.twist()
	}
	y := g.state.Words[g.state.Index]
	g.state.Index++
	return temper(y)
}

// Bits returns the next k-bit unsigned integer, matching CPython's
// getrandbits(k). For k <= 32 this is gen_uint32() >> (32-k); for k > 32
// it assembles ⌈k/32⌉ words, most significant word last, with the final
// word right-shifted so that only its top k mod 32 bits are kept.
func (g *Generator) Bits(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k <= 32 {
		return uint64(g.Uint32() >> (32 - uint(k)))
	}

	words := bitops.CeilDiv(k, 32)
	var result uint64
	remaining := k
	for i := 0; i < words; i++ {
		word := g.Uint32()
		bitsThisWord := 32
		if remaining < 32 {
			bitsThisWord = remaining
			word >>= uint(32 - bitsThisWord)
		}
		result |= uint64(word) << uint(32*i)
		remaining -= bitsThisWord
	}
	return result
}

// Float64 returns the next 53-bit float in [0, 1), matching CPython's
// random.random(): two consecutive 32-bit draws, most significant word
// first.
func (g *Generator) Float64() float64 {
	a := g.Uint32()
	b := g.Uint32()
	hi := uint64(a >> 5)
	lo := uint64(b >> 6)
	return float64(hi*67108864+lo) / 9007199254740992.0
}

// State returns a copy of the generator's current state.
func (g *Generator) State() State {
	return g.state
}

// Restore installs s as the generator's current state, e.g. after a
// solver has recovered it from observed outputs.
func (g *Generator) Restore(s State) {
	g.state = s
}

// FromState builds a Generator directly from a recovered state, without
// going through seeding.
func FromState(s State) *Generator {
	g := &Generator{}
	g.Restore(s)
	return g
}
