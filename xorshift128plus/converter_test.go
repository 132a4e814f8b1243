package xorshift128plus

import (
	"math/rand"
	"testing"
)

// TestConverterRoundTrip checks spec.md §8 property 4 for both
// converters: for any state whose ignored low bits are zero,
// FromDouble(ToDouble(s)) == s.
func TestConverterRoundTrip(t *testing.T) {
	converters := []Converter{DivisionConverter{}, BinaryCastConverter{}}
	r := rand.New(rand.NewSource(3))

	for _, c := range converters {
		ignored := uint(c.IgnoredBits())
		for i := 0; i < 50000; i++ {
			s := (r.Uint64() >> ignored) << ignored
			d := c.ToDouble(s)
			if d < 0 || d >= 1 {
				t.Fatalf("%T: ToDouble(%#x) = %v out of [0,1)", c, s, d)
			}
			got := c.FromDouble(d)
			if got != s {
				t.Fatalf("%T: FromDouble(ToDouble(%#x)) = %#x", c, s, got)
			}
		}
	}
}

func TestIgnoredBits(t *testing.T) {
	if (DivisionConverter{}).IgnoredBits() != 11 {
		t.Fatalf("DivisionConverter.IgnoredBits() != 11")
	}
	if (BinaryCastConverter{}).IgnoredBits() != 12 {
		t.Fatalf("BinaryCastConverter.IgnoredBits() != 12")
	}
}
