package arrays

import (
	"testing"

	"github.com/rgwbasic/gwbasic/internal/values"
)

func TestNewArrayDefaultsElements(t *testing.T) {
	arr := New("A", values.Integer, 3)
	for i := 1; i <= 3; i++ {
		v, err := arr.Get(i)
		if err != nil {
			t.Fatalf("unexpected error at index %d: %v", i, err)
		}
		if v.String() != "0" {
			t.Errorf("expected default 0 at index %d, got %s", i, v.String())
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	arr := New("A", values.Integer, 5)
	if err := arr.Set(3, values.NewInteger(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := arr.Get(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "42" {
		t.Errorf("expected 42, got %s", v.String())
	}
}

func TestGetOutOfRange(t *testing.T) {
	arr := New("A", values.Integer, 3)
	if _, err := arr.Get(0); err == nil {
		t.Errorf("expected Subscript out of range for index 0")
	}
	if _, err := arr.Get(4); err == nil {
		t.Errorf("expected Subscript out of range for index 4")
	}
}

func TestSetCoercesToElementKind(t *testing.T) {
	arr := New("A", values.Integer, 1)
	if err := arr.Set(1, values.NewDouble(3.9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := arr.Get(1)
	if v.Kind() != values.Integer || v.String() != "3" {
		t.Errorf("expected coercion to Integer(3), got %v %s", v.Kind(), v.String())
	}
}

func TestStoreDeclareAndLookupIsCaseInsensitive(t *testing.T) {
	store := NewStore()
	store.Declare("arr", values.String, 2)
	arr, ok := store.Lookup("ARR")
	if !ok {
		t.Fatalf("expected to find array declared as lowercase under an uppercase lookup")
	}
	if arr.Kind != values.String {
		t.Errorf("expected String kind, got %v", arr.Kind)
	}
}

func TestStoreLookupMissing(t *testing.T) {
	store := NewStore()
	if _, ok := store.Lookup("X"); ok {
		t.Errorf("expected no array to be found")
	}
}
