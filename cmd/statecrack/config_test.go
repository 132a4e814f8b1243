package main

import (
	"testing"

	"github.com/xtaci/statecrack/rngtypes"
)

func TestParseRngTypeKnownSpellings(t *testing.T) {
	cases := map[string]rngtypes.RngType{
		"V8":        rngtypes.V8,
		"V8_LEGACY": rngtypes.V8Legacy,
		"V8_INT":    rngtypes.V8Int,
		"MT19937":   rngtypes.MT19937,
	}
	for spelling, want := range cases {
		got, ok := parseRngType(spelling)
		if !ok {
			t.Fatalf("parseRngType(%q) reported unknown type", spelling)
		}
		if got != want {
			t.Fatalf("parseRngType(%q) = %v, want %v", spelling, got, want)
		}
	}
}

func TestParseRngTypeUnknown(t *testing.T) {
	if _, ok := parseRngType("v8"); ok {
		t.Fatal("parseRngType(\"v8\") reported known, want unknown (case must match exactly)")
	}
	if _, ok := parseRngType(""); ok {
		t.Fatal("parseRngType(\"\") reported known, want unknown")
	}
}
