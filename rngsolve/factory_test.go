package rngsolve

import (
	"testing"

	"github.com/xtaci/statecrack/rngtypes"
)

func TestCreateFloatKnownTypes(t *testing.T) {
	for _, rt := range []rngtypes.RngType{rngtypes.V8, rngtypes.V8Legacy} {
		s, err := CreateFloat(rt)
		if err != nil {
			t.Fatalf("CreateFloat(%s) = %v", rt, err)
		}
		if s.Status() != rngtypes.StatusSolving {
			t.Fatalf("CreateFloat(%s).Status() = %v, want SOLVING", rt, s.Status())
		}
	}
}

func TestCreateFloatRejectsIntTypes(t *testing.T) {
	if _, err := CreateFloat(rngtypes.MT19937); err == nil {
		t.Fatal("CreateFloat(MT19937) succeeded, want error")
	}
}

func TestCreateIntKnownTypes(t *testing.T) {
	s, err := CreateInt(rngtypes.MT19937, 0)
	if err != nil {
		t.Fatalf("CreateInt(MT19937, 0) = %v", err)
	}
	if s.Status() != rngtypes.StatusSolving {
		t.Fatalf("CreateInt(MT19937).Status() = %v, want SOLVING", s.Status())
	}

	s, err = CreateInt(rngtypes.V8Int, 1<<32)
	if err != nil {
		t.Fatalf("CreateInt(V8Int, 2^32) = %v", err)
	}
	if s.Status() != rngtypes.StatusSolving {
		t.Fatalf("CreateInt(V8Int).Status() = %v, want SOLVING", s.Status())
	}
}

func TestCreateIntRejectsZeroMultiplierForV8Int(t *testing.T) {
	if _, err := CreateInt(rngtypes.V8Int, 0); err == nil {
		t.Fatal("CreateInt(V8Int, 0) succeeded, want error")
	}
}

func TestCreateIntRejectsFloatTypes(t *testing.T) {
	if _, err := CreateInt(rngtypes.V8, 0); err == nil {
		t.Fatal("CreateInt(V8, 0) succeeded, want error")
	}
}

func TestIsFloatType(t *testing.T) {
	cases := map[rngtypes.RngType]bool{
		rngtypes.V8:       true,
		rngtypes.V8Legacy: true,
		rngtypes.MT19937:  false,
		rngtypes.V8Int:    false,
	}
	for rt, want := range cases {
		if got := IsFloatType(rt); got != want {
			t.Fatalf("IsFloatType(%s) = %v, want %v", rt, got, want)
		}
	}
}
