package jton

import "testing"

func TestEncodeBase62(t *testing.T) {
	tests := map[int]string{
		0:  "0",
		1:  "1",
		9:  "9",
		10: "A",
		35: "Z",
		36: "a",
		61: "z",
		62: "10",
	}
	for n, want := range tests {
		if got := encodeBase62(n); got != want {
			t.Errorf("encodeBase62(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestKeyDictInternIsStable(t *testing.T) {
	kd := newKeyDict()
	first := kd.intern("name")
	second := kd.intern("name")
	if first != second {
		t.Errorf("intern(%q) not stable: %q then %q", "name", first, second)
	}
}

func TestKeyDictSkipsReservedTokens(t *testing.T) {
	kd := newKeyDict()
	// Force the counter past reserved single-char tokens (index 28 is 'S',
	// 36 is 'a', 38 is 'c').
	for i := 0; i < 40; i++ {
		kd.intern(string(rune('A' + i)))
	}
	for _, tok := range kd.tokenOf {
		if reservedWords[tok] {
			t.Errorf("assigned reserved token %q", tok)
		}
	}
}

func TestLooksLikeKeyDictRejectsNonStringValues(t *testing.T) {
	m := Obj(Member{"name", Int(1)})
	if looksLikeKeyDict(m) {
		t.Error("expected object with non-string value to be rejected as a key dictionary")
	}
}

func TestLooksLikeKeyDictRejectsNonObject(t *testing.T) {
	if looksLikeKeyDict(Int(1)) {
		t.Error("expected non-object to be rejected as a key dictionary")
	}
}

func TestKeyDictToValuePreservesAssignmentOrder(t *testing.T) {
	kd := newKeyDict()
	kd.intern("z")
	kd.intern("a")
	kd.intern("m")
	m := kd.toValue()
	got := make([]string, len(m.objVal))
	for i, mem := range m.objVal {
		got[i] = mem.Key
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("assignment order = %v, want %v", got, want)
		}
	}
}
