package v8solve

import "testing"

// TestIntSolverKnownSequence reproduces the reference V8_INT scenario
// this variant is grounded on: a multiplier of 2^32, 16 observed
// integers, and 4 subsequent predictions.
func TestIntSolverKnownSequence(t *testing.T) {
	const multiplier = uint64(1) << 32
	seq := []float64{
		0.14125615467524433,
		0.26338755919900825,
		0.35195985313880274,
		0.017540229969875143,
		0.9709689202550907,
		0.6878379941821865,
		0.26971805726378495,
		0.7918168602898303,
		0.870242991224168,
		0.7266674854224073,
		0.02669613161449602,
		0.7837415283729079,
		0.3205086721472562,
		0.5516568532161495,
		0.21067570655396728,
		0.4171358133289702,
		0.5267603220387562,
		0.19739876622115204,
		0.5044790755285522,
		0.7527406751741436,
	}
	toInt := func(v float64) uint64 {
		return uint64(v * float64(multiplier))
	}

	observed := seq[:16]
	expected := seq[16:]

	s := NewIntSolver(multiplier)
	for _, v := range observed {
		if err := s.AddValue(toInt(v)); err != nil {
			t.Fatalf("AddValue(%v) = %v (status %v)", toInt(v), err, s.Status())
		}
	}

	for _, v := range expected {
		want := toInt(v)
		got, err := s.PredictNext()
		if err != nil {
			t.Fatalf("PredictNext() = %v", err)
		}
		if got != want {
			t.Fatalf("PredictNext() = %v, want %v", got, want)
		}
	}
}

func TestIntSolverNotEnoughData(t *testing.T) {
	s := NewIntSolver(1 << 32)
	if _, err := s.PredictNext(); err.Error() != "not enough data" {
		t.Fatalf("PredictNext() on empty solver = %v, want not-enough-data", err)
	}
}
