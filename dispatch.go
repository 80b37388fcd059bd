package typefix

import (
	"strconv"

	eng "github.com/reoring/typefix/internal/engine"
	"github.com/reoring/typefix/value"
)

// Validator applies schemas to value trees and returns corrected copies.
// It holds no mutable state, so one Validator may serve concurrent calls.
type Validator struct {
	maxDepth int
}

// New builds a Validator.
func New(opts ...Option) *Validator {
	o := buildOptions(opts)
	return &Validator{maxDepth: o.MaxDepth}
}

var defaultValidator = New()

// Validate checks in against s with the default Validator.
func Validate(s Schema, in value.Value) (value.Value, error) {
	return defaultValidator.Validate(s, in)
}

// Validate checks in against s and returns the corrected value. The input is
// never modified.
func (v *Validator) Validate(s Schema, in value.Value) (value.Value, error) {
	return v.validate(s, in, cursor{})
}

// cursor tracks where in the document the walk currently is.
type cursor struct {
	path  string
	depth int
}

func (c cursor) field(name string) cursor {
	return cursor{path: eng.JoinPointer(c.path, name), depth: c.depth + 1}
}

func (c cursor) index(i int) cursor {
	return cursor{path: eng.JoinPointer(c.path, strconv.Itoa(i)), depth: c.depth + 1}
}

// validate is the dispatcher: it resolves boolean and empty schemas, then
// routes on the declared type.
func (v *Validator) validate(s Schema, in value.Value, at cursor) (value.Value, error) {
	if at.depth > v.maxDepth {
		return value.Value{}, violation(at.path, CodeTooDeep, "maximum nesting depth exceeded", map[string]any{"max": v.maxDepth})
	}
	if s.IsFalse() {
		return value.Value{}, violation(at.path, CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	if s.IsTrivial() {
		return in, nil
	}
	t, declared, err := s.Type()
	if err != nil {
		return value.Value{}, schemaErr(at.path, "%v", err)
	}
	if !declared {
		return value.Value{}, schemaErr(at.path, "schema must declare a type")
	}
	switch t {
	case TypeBoolean:
		return v.boolean(s, in, at)
	case TypeInteger, TypeNumber:
		return v.numeric(s, in, at)
	case TypeString:
		return v.str(s, in, at)
	case TypeNull:
		return v.null(in, at)
	case TypeArray:
		return v.array(s, in, at)
	case TypeObject:
		return v.object(s, in, at)
	}
	return value.Value{}, schemaErr(at.path, "unsupported type %s", t)
}

// Boolean applies only the boolean keyword family to in.
func (v *Validator) Boolean(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.boolean(s, in, cursor{})
}

// Null applies only the null check to in.
func (v *Validator) Null(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.null(in, cursor{})
}

// Numeric applies only the numeric keyword family to in. Without a declared
// type the result is an integer for integral lexemes and a number otherwise.
func (v *Validator) Numeric(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.numeric(s, in, cursor{})
}

// String applies only the string keyword family to in.
func (v *Validator) String(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.str(s, in, cursor{})
}

// Array applies the array keywords to in, dispatching on every element.
func (v *Validator) Array(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.array(s, in, cursor{})
}

// Object applies the object keywords to in, dispatching on every member.
func (v *Validator) Object(s Schema, in value.Value) (value.Value, error) {
	if s.IsFalse() {
		return value.Value{}, violation("", CodeFalseSchema, "schema is false: no value is valid", nil)
	}
	return v.object(s, in, cursor{})
}
