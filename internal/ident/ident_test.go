package ident

import "testing"

func TestNormalize(t *testing.T) {
	if Normalize("count$") != "COUNT$" {
		t.Errorf("expected upper-cased normalization")
	}
}

func TestEqual(t *testing.T) {
	if !Equal("Total", "TOTAL") {
		t.Errorf("expected case-insensitive equality")
	}
	if Equal("A", "B") {
		t.Errorf("expected inequality")
	}
}

func TestHasSigil(t *testing.T) {
	if !HasSigil("NAME$") {
		t.Errorf("expected NAME$ to carry the string sigil")
	}
	if HasSigil("COUNT") {
		t.Errorf("expected COUNT to carry no sigil")
	}
}

func TestBaseLetter(t *testing.T) {
	if BaseLetter("total") != 'T' {
		t.Errorf("expected base letter T")
	}
	if BaseLetter("") != 0 {
		t.Errorf("expected 0 for an empty name")
	}
}
