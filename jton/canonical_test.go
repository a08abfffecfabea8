package jton

import "testing"

func TestCanonicalIntHasNoDecimalPoint(t *testing.T) {
	if got := Canonical(Int(5)); got != "5" {
		t.Errorf("Canonical(Int(5)) = %q, want %q", got, "5")
	}
}

func TestCanonicalFloatAlwaysMarked(t *testing.T) {
	tests := map[float64]string{
		5.0:  "5.0",
		1.5:  "1.5",
		-2.0: "-2.0",
	}
	for in, want := range tests {
		if got := Canonical(Float(in)); got != want {
			t.Errorf("Canonical(Float(%v)) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalFloatRoundTripsAsFloat(t *testing.T) {
	got := Canonical(Float(5.0))
	v, err := ParseJSON([]byte(got))
	if err != nil {
		t.Fatalf("ParseJSON(%q): %v", got, err)
	}
	if v.Kind() != KindFloat {
		t.Errorf("re-parsed %q as %s, want float", got, v.Kind())
	}
}

func TestCanonicalPreservesKeyOrder(t *testing.T) {
	v := Obj(Member{"z", Int(1)}, Member{"a", Int(2)})
	if got := Canonical(v); got != `{"z":1,"a":2}` {
		t.Errorf("Canonical() = %q", got)
	}
}

func TestCanonicalEscapesControlCharacters(t *testing.T) {
	got := Canonical(Str("a\x01b"))
	want := "\"a\\u0001b\""
	if got != want {
		t.Errorf("Canonical(control char) = %q, want %q", got, want)
	}
}

func TestCanonicalCompactSeparators(t *testing.T) {
	v := Arr(Int(1), Int(2), Int(3))
	if got := Canonical(v); got != "[1,2,3]" {
		t.Errorf("Canonical() = %q", got)
	}
}
