package preprocess

import (
	"fmt"
	"math"
	"reflect"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindMissing Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a single element of a [Sequence]. Exactly one payload is valid,
// selected by kind. The zero Value is Missing.
type Value struct {
	kind Kind

	b    bool
	i    int64
	f    float64
	s    string
	list []Value
}

// Sequence is an ordered list of values. Duplicates are allowed.
type Sequence []Value

// Missing returns the absent-data marker.
func Missing() Value {
	return Value{}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int creates an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float creates a floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NaN creates a not-a-number float, which counts as missing.
func NaN() Value {
	return Float(math.NaN())
}

// Text creates a string value. The empty string counts as missing.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// List creates a nested sequence value.
func List(vs ...Value) Value {
	return Value{kind: KindList, list: vs}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload and whether v is an Int.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float payload and whether v is a Float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsText returns the string payload and whether v is Text.
func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

// AsList returns the nested elements and whether v is a List.
// The returned slice shares storage with v and must not be modified.
func (v Value) AsList() (Sequence, bool) {
	return v.list, v.kind == KindList
}

// Number returns v as a float64 when v is an Int or a Float.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// IsNumeric reports whether v is an Int or a Float. NaN and infinities are
// numeric; Bool is not.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// IsMissing reports whether v is absent data: Missing, empty Text, or a NaN
// Float. Zero and false are not missing.
func (v Value) IsMissing() bool {
	switch v.kind {
	case KindMissing:
		return true
	case KindText:
		return v.s == ""
	case KindFloat:
		return math.IsNaN(v.f)
	}
	return false
}

// Equal reports whether v and o hold the same kind and payload.
// Int(10) and Float(10) are different values, and NaN equals nothing.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a copy of s. Nested lists are copied as well.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, v := range s {
		if v.kind == KindList {
			v.list = Sequence(v.list).Clone()
		}
		out[i] = v
	}
	return out
}

// ValueOf lifts a native Go value into a Value. nil becomes Missing, bools,
// integers, floats and strings map to their kinds, and slices become lists.
// Types with no natural mapping become Text of their fmt.Sprint form.
func ValueOf(x any) Value { //nolint:revive // one case per supported native type
	switch t := x.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case Sequence:
		return List(t...)
	case []Value:
		return List(t...)
	case []any:
		return List(SequenceOf(t...)...)
	case bool:
		return Bool(t)
	case string:
		return Text(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Slice, reflect.Array:
		out := make(Sequence, rv.Len())
		for i := range rv.Len() {
			out[i] = ValueOf(rv.Index(i).Interface())
		}
		return List(out...)
	case reflect.Ptr:
		if rv.IsNil() {
			return Missing()
		}
		return ValueOf(rv.Elem().Interface())
	}
	return Text(fmt.Sprint(x))
}

// SequenceOf lifts each argument with [ValueOf].
func SequenceOf(xs ...any) Sequence {
	out := make(Sequence, len(xs))
	for i, x := range xs {
		out[i] = ValueOf(x)
	}
	return out
}
