package mt19937

import (
	"math/rand"
	"testing"
)

func TestTemperUntemperRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	// Universal property over a large sample of uint32 space (spec §8.1):
	// exhaustive verification is infeasible, so this samples densely,
	// plus the boundary values that shift/mask arithmetic most often
	// gets wrong.
	boundary := []uint32{0, 1, 0xFFFFFFFF, 0x80000000, 0x7FFFFFFF, 0x55555555, 0xAAAAAAAA}
	for _, y := range boundary {
		if got := temper(untemper(y)); got != y {
			t.Fatalf("temper(untemper(%#x)) = %#x", y, got)
		}
		if got := untemper(temper(y)); got != y {
			t.Fatalf("untemper(temper(%#x)) = %#x", y, got)
		}
	}
	for i := 0; i < 200000; i++ {
		y := r.Uint32()
		if got := temper(untemper(y)); got != y {
			t.Fatalf("temper(untemper(%#x)) = %#x", y, got)
		}
		if got := untemper(temper(y)); got != y {
			t.Fatalf("untemper(temper(%#x)) = %#x", y, got)
		}
	}
}
