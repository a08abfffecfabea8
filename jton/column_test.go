package jton

import "testing"

func rowObj(id int64, name string) *Value {
	return Obj(Member{"id", Int(id)}, Member{"name", Str(name)})
}

func TestIsColumnCandidateAcceptsUniformSchema(t *testing.T) {
	arr := []*Value{rowObj(1, "a"), rowObj(2, "b"), rowObj(3, "c")}
	if !isColumnCandidate(arr) {
		t.Error("expected uniform-schema array to qualify")
	}
}

func TestIsColumnCandidateRejectsTooFewRows(t *testing.T) {
	arr := []*Value{rowObj(1, "a")}
	if isColumnCandidate(arr) {
		t.Error("expected single-row array to be rejected")
	}
}

func TestIsColumnCandidateRejectsDifferentKeySets(t *testing.T) {
	arr := []*Value{
		rowObj(1, "a"),
		Obj(Member{"id", Int(2)}, Member{"other", Str("b")}),
	}
	if isColumnCandidate(arr) {
		t.Error("expected mismatched key sets to be rejected")
	}
}

func TestIsColumnCandidateRejectsDifferentKeyOrder(t *testing.T) {
	arr := []*Value{
		Obj(Member{"id", Int(1)}, Member{"name", Str("a")}),
		Obj(Member{"name", Str("b")}, Member{"id", Int(2)}),
	}
	if isColumnCandidate(arr) {
		t.Error("expected mismatched key order to be rejected")
	}
}

func TestIsColumnCandidateRejectsNonObjectElement(t *testing.T) {
	arr := []*Value{rowObj(1, "a"), Int(2)}
	if isColumnCandidate(arr) {
		t.Error("expected non-object element to be rejected")
	}
}

func TestColumnValuesExtractsInRowOrder(t *testing.T) {
	arr := []*Value{rowObj(1, "a"), rowObj(2, "b")}
	col := columnValues(arr, 0)
	if col[0].AsInt() != 1 || col[1].AsInt() != 2 {
		t.Errorf("unexpected column values %v", col)
	}
}
