package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/xtaci/statecrack/mt19937"
	"github.com/xtaci/statecrack/rngtypes"
)

func TestRunMT19937SolvesAndPredicts(t *testing.T) {
	gen := mt19937.NewFromSeed(42)
	for i := 0; i < 777; i++ {
		gen.Uint32()
	}

	var lines []string
	var expected []uint32
	for i := 0; i < 624; i++ {
		lines = append(lines, strconv.FormatUint(uint64(gen.Uint32()), 10))
	}
	for i := 0; i < 5; i++ {
		expected = append(expected, gen.Uint32())
	}

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	code := run(Config{Type: rngtypes.MT19937, Predict: 5}, in, &out)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; output: %s", code, out.String())
	}

	gotLines := strings.Fields(out.String())
	if len(gotLines) != len(expected) {
		t.Fatalf("got %d predictions, want %d", len(gotLines), len(expected))
	}
	for i, want := range expected {
		if gotLines[i] != fmt.Sprint(want) {
			t.Fatalf("prediction %d = %s, want %d", i, gotLines[i], want)
		}
	}
}

func TestRunMT19937NotEnoughData(t *testing.T) {
	in := strings.NewReader("1\n2\n3\n")
	var out bytes.Buffer
	code := run(Config{Type: rngtypes.MT19937, Predict: 1}, in, &out)
	if code != 3 {
		t.Fatalf("run() = %d, want 3 (not enough data)", code)
	}
}

func TestRunUnparseableLine(t *testing.T) {
	in := strings.NewReader("not-a-number\n")
	var out bytes.Buffer
	code := run(Config{Type: rngtypes.MT19937, Predict: 1}, in, &out)
	if code != 1 {
		t.Fatalf("run() = %d, want 1 (parse error)", code)
	}
}

func TestRunBlankLinesIgnored(t *testing.T) {
	in := strings.NewReader("\n\n1\n\n")
	var out bytes.Buffer
	code := run(Config{Type: rngtypes.MT19937, Predict: 1}, in, &out)
	if code != 3 {
		t.Fatalf("run() = %d, want 3 (single real value is still not enough data)", code)
	}
}
