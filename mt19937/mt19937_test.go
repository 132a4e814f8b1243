package mt19937

import "testing"

// TestSeedIsDeterministic checks that two generators seeded identically
// produce identical sequences, and that different seeds diverge. No
// test in this package compares against a CPython golden sequence: the
// solver test (scenario S1) also derives its expected values from this
// same Go implementation.
func TestSeedIsDeterministic(t *testing.T) {
	a := NewFromSeed(123456789)
	b := NewFromSeed(123456789)
	for i := 0; i < 2000; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("draw %d diverged for identical seeds: %d != %d", i, x, y)
		}
	}

	c := NewFromSeed(1)
	d := NewFromSeed(2)
	same := true
	for i := 0; i < 8; i++ {
		if c.Uint32() != d.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct seeds produced identical sequences")
	}
}

func TestNewFromSeedZeroAndNegative(t *testing.T) {
	zero := NewFromSeed(0)
	neg := NewFromSeed(-5)
	pos := NewFromSeed(5)
	for i := 0; i < 8; i++ {
		zero.Uint32()
	}
	for i := 0; i < 8; i++ {
		if got, want := neg.Uint32(), pos.Uint32(); got != want {
			t.Fatalf("seed(-5) should match seed(5) after negation, draw %d: %d != %d", i, got, want)
		}
	}
}

func TestBitsSmallK(t *testing.T) {
	g := NewFromSeed(42)
	h := NewFromSeed(42)
	full := h.Uint32()
	want := uint64(full >> (32 - 10))
	if got := g.Bits(10); got != want {
		t.Fatalf("Bits(10) = %d, want %d", got, want)
	}
}

func TestBitsLargeKMatchesWordAssembly(t *testing.T) {
	g := NewFromSeed(7)
	h := NewFromSeed(7)
	lo := h.Uint32()
	hiWord := h.Uint32()
	hi := hiWord >> (64 - 40)
	want := uint64(lo) | uint64(hi)<<32

	if got := g.Bits(40); got != want {
		t.Fatalf("Bits(40) = %#x, want %#x", got, want)
	}
}

func TestFloat64InUnitInterval(t *testing.T) {
	g := NewFromSeed(9)
	for i := 0; i < 1000; i++ {
		f := g.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() out of range: %v", f)
		}
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := NewFromSeed(2024)
	for i := 0; i < 1000; i++ {
		g.Uint32()
	}
	saved := g.State()

	restored := FromState(saved)
	for i := 0; i < 1000; i++ {
		a := g.Uint32()
		b := restored.Uint32()
		if a != b {
			t.Fatalf("draw %d diverged after restore: %d != %d", i, a, b)
		}
	}
}
