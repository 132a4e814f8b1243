package bitops

import "testing"

func TestFloat64BitsRoundTrip(t *testing.T) {
	vals := []float64{0, 1, 0.5, 0.3333333333333333, 1.9999999999999998}
	for _, v := range vals {
		if got := Float64FromBits(Float64Bits(v)); got != v {
			t.Fatalf("round trip mismatch for %v: got %v", v, got)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{32, 32, 1},
		{33, 32, 2},
		{64, 32, 2},
		{1, 32, 1},
		{11, 17, 1},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestOneBits(t *testing.T) {
	if OneBits != 0x3FF0000000000000 {
		t.Fatalf("OneBits = %#x, want 0x3ff0000000000000", OneBits)
	}
}
