// Package value defines the JSON value tree exchanged between the text layer
// and the validation engine.
//
// A Value is immutable once built. Containers are constructed with Array and
// NewObject/Object.Set and must not be modified after they are wrapped.
package value

import (
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindText:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the JSON data model. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	lit  string // source spelling of a decoded number, if any
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a double-precision number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// IntLiteral is Int for a number decoded from text; lit is kept as its
// lexeme so the source spelling survives string coercion.
func IntLiteral(i int64, lit string) Value { return Value{kind: KindInt, i: i, lit: lit} }

// FloatLiteral is Float for a number decoded from text, keeping lit.
func FloatLiteral(f float64, lit string) Value { return Value{kind: KindFloat, f: f, lit: lit} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Array wraps a sequence of values. The slice is copied.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// ObjectOf wraps an ordered object. A nil object is treated as empty.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumber reports whether v holds an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// IsScalar reports whether v is a leaf (neither an array nor an object).
func (v Value) IsScalar() bool { return v.kind != KindArray && v.kind != KindObject }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsFloat returns the numeric value of an Int or a Float.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Elems returns the elements of an array. Callers must not modify the slice.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// AsObject returns the object held by v, or nil.
func (v Value) AsObject() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Len returns the element count of an array or the key count of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Lexeme returns the textual form of a leaf: the raw string for Text, the
// source spelling for decoded numbers, and the JSON spelling for every other
// scalar. Containers yield their encoding.
func (v Value) Lexeme() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		if v.lit != "" {
			return v.lit
		}
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if v.lit != "" {
			return v.lit
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	default:
		b, err := Encode(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// String renders v as JSON text; it is meant for messages and logs.
func (v Value) String() string {
	b, err := Encode(v)
	if err != nil {
		return "<" + v.kind.String() + ">"
	}
	return string(b)
}
