package jton

import "fmt"

// Kind identifies the type of a Value. Integers and floats are distinct
// kinds even when numerically equal; the distinction must survive a
// Compress/Decompress round trip.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name, mostly useful in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a key-value pair inside a JSON object. Object order is
// preserved throughout the codec.
type Member struct {
	Key   string
	Value *Value
}

// Value is the abstract JSON value the codec operates on: null, bool,
// int, float, string, array, or object. Values are treated as immutable
// once constructed; Compress and Decompress never mutate their input.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	arrVal   []*Value
	objVal   []Member
}

// Null returns the null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

// Int returns a signed 64-bit integer value.
func Int(i int64) *Value { return &Value{kind: KindInt, intVal: i} }

// Float returns a finite IEEE-754 double value. Callers must not pass
// NaN or Infinity; Compress rejects them with UnsupportedValue.
func Float(f float64) *Value { return &Value{kind: KindFloat, floatVal: f} }

// Str returns a string value.
func Str(s string) *Value { return &Value{kind: KindString, strVal: s} }

// Arr returns an array value containing elems in order.
func Arr(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Obj returns an object value with the given members, in insertion order.
func Obj(members ...Member) *Value {
	return &Value{kind: KindObject, objVal: members}
}

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the underlying boolean. Only valid when Kind() == KindBool.
func (v *Value) AsBool() bool { return v.boolVal }

// AsInt returns the underlying integer. Only valid when Kind() == KindInt.
func (v *Value) AsInt() int64 { return v.intVal }

// AsFloat returns the underlying float. Only valid when Kind() == KindFloat.
func (v *Value) AsFloat() float64 { return v.floatVal }

// AsStr returns the underlying string. Only valid when Kind() == KindString.
func (v *Value) AsStr() string { return v.strVal }

// AsArr returns the underlying element slice. Only valid when Kind() == KindArray.
func (v *Value) AsArr() []*Value { return v.arrVal }

// AsObj returns the underlying member slice. Only valid when Kind() == KindObject.
func (v *Value) AsObj() []Member { return v.objVal }

// Get returns the value for key in an object, or nil if absent.
func (v *Value) Get(key string) *Value {
	for _, m := range v.objVal {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Has reports whether an object has exactly the given member keys,
// irrespective of order.
func (v *Value) Has(keys ...string) bool {
	if v.kind != KindObject || len(v.objVal) != len(keys) {
		return false
	}
	for _, k := range keys {
		if v.Get(k) == nil {
			return false
		}
	}
	return true
}

// deepEqual reports whether a and b are the same JSON value, respecting
// the int/float distinction (1 != 1.0) and object key order.
func deepEqual(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !deepEqual(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for i := range a.objVal {
			if a.objVal[i].Key != b.objVal[i].Key {
				return false
			}
			if !deepEqual(a.objVal[i].Value, b.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v *Value) String() string {
	return fmt.Sprintf("Value(%s)", v.kind)
}
