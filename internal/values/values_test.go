package values

import "testing"

func TestWiden(t *testing.T) {
	cases := []struct {
		a, b Kind
		want Kind
	}{
		{Integer, Integer, Integer},
		{Integer, Single, Single},
		{Single, Double, Double},
		{Double, Integer, Double},
		{String, Integer, String},
	}
	for _, c := range cases {
		if got := Widen(c.a, c.b); got != c.want {
			t.Errorf("Widen(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestBinaryNumericWidensToWiderOperand(t *testing.T) {
	v, err := BinaryNumeric(NewInteger(2), NewDouble(1.5), func(a, b float64) float64 { return a + b })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != Double {
		t.Errorf("expected Double result, got %v", v.Kind())
	}
	if v.String() != "3.5" {
		t.Errorf("expected 3.5, got %s", v.String())
	}
}

func TestBinaryNumericRejectsString(t *testing.T) {
	if _, err := BinaryNumeric(NewString("a"), NewInteger(1), func(a, b float64) float64 { return a }); err == nil {
		t.Errorf("expected Type mismatch error")
	}
}

func TestNarrowIntegerTruncatesTowardZero(t *testing.T) {
	v := Narrow(3.9, Integer)
	iv, ok := v.(*IntegerValue)
	if !ok || iv.Val != 3 {
		t.Errorf("expected IntegerValue(3), got %#v", v)
	}
	v = Narrow(-3.9, Integer)
	iv, ok = v.(*IntegerValue)
	if !ok || iv.Val != -3 {
		t.Errorf("expected IntegerValue(-3), got %#v", v)
	}
}

func TestBasicBool(t *testing.T) {
	if BasicBool(true).Val != -1 {
		t.Errorf("expected true to be -1")
	}
	if BasicBool(false).Val != 0 {
		t.Errorf("expected false to be 0")
	}
}

func TestCompareStrings(t *testing.T) {
	v, err := Compare(NewString("abc"), NewString("abd"), "<")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Truthy(v) {
		t.Errorf("expected \"abc\" < \"abd\" to be true")
	}
}

func TestCompareMixedStringNumberIsTypeMismatch(t *testing.T) {
	if _, err := Compare(NewString("1"), NewInteger(1), "="); err == nil {
		t.Errorf("expected Type mismatch comparing a string to a number")
	}
}

func TestCoerceAssignFixesVariableType(t *testing.T) {
	existing := NewSingle(0)
	coerced, err := CoerceAssign(existing, NewInteger(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coerced.Kind() != Single {
		t.Errorf("expected coercion to the variable's existing Single kind, got %v", coerced.Kind())
	}
}

func TestCoerceAssignStringNumberMismatch(t *testing.T) {
	if _, err := CoerceAssign(NewString(""), NewInteger(1)); err == nil {
		t.Errorf("expected Type mismatch assigning a number to a string variable")
	}
}

func TestToIndexRejectsNegative(t *testing.T) {
	if _, err := ToIndex(NewInteger(-1), "Subscript out of range"); err == nil {
		t.Errorf("expected an error for a negative index")
	}
}

func TestParseNumericDataTrimsSigils(t *testing.T) {
	v, err := ParseNumericData(" 42# ", Double)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "42" {
		t.Errorf("expected 42, got %s", v.String())
	}
}
