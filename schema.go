package typefix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/typefix/value"
)

// Keywords recognized by the engine.
const (
	kwType                 = "type"
	kwEnum                 = "enum"
	kwConst                = "const"
	kwMinimum              = "minimum"
	kwMaximum              = "maximum"
	kwExclusiveMinimum     = "exclusiveMinimum"
	kwExclusiveMaximum     = "exclusiveMaximum"
	kwMultipleOf           = "multipleOf"
	kwMinLength            = "minLength"
	kwMaxLength            = "maxLength"
	kwPattern              = "pattern"
	kwItems                = "items"
	kwAdditionalItems      = "additionalItems"
	kwMinItems             = "minItems"
	kwMaxItems             = "maxItems"
	kwUniqueItems          = "uniqueItems"
	kwRequired             = "required"
	kwProperties           = "properties"
	kwPatternProperties    = "patternProperties"
	kwAdditionalProperties = "additionalProperties"
	kwMinProperties        = "minProperties"
	kwMaxProperties        = "maxProperties"
)

// TypeKind is the closed set of values accepted by the "type" keyword.
type TypeKind int

const (
	TypeBoolean TypeKind = iota + 1
	TypeInteger
	TypeNumber
	TypeString
	TypeObject
	TypeArray
	TypeNull
)

func (t TypeKind) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeNull:
		return "null"
	default:
		return "TypeKind(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTypeKind maps a "type" keyword value to a TypeKind. "String" is
// accepted as a legacy spelling of "string".
func ParseTypeKind(s string) (TypeKind, bool) {
	switch s {
	case "boolean":
		return TypeBoolean, true
	case "integer":
		return TypeInteger, true
	case "number":
		return TypeNumber, true
	case "string", "String":
		return TypeString, true
	case "object":
		return TypeObject, true
	case "array":
		return TypeArray, true
	case "null":
		return TypeNull, true
	}
	return 0, false
}

// Schema is a read-only schema node: an object recognized by keyword, or one
// of the boolean schemas true and false.
type Schema struct {
	node value.Value
}

// NewSchema wraps a parsed schema node. Only objects and booleans are schemas.
func NewSchema(node value.Value) (Schema, error) {
	switch node.Kind() {
	case value.KindObject, value.KindBool:
		return Schema{node: node}, nil
	default:
		return Schema{}, fmt.Errorf("typefix: schema must be an object or a boolean, got %s", node.Kind())
	}
}

// BoolSchema returns the schema true (accept everything) or false (reject
// everything).
func BoolSchema(b bool) Schema { return Schema{node: value.Bool(b)} }

// Node returns the underlying schema value.
func (s Schema) Node() value.Value { return s.node }

func (s Schema) IsTrue() bool {
	b, ok := s.node.AsBool()
	return ok && b
}

func (s Schema) IsFalse() bool {
	b, ok := s.node.AsBool()
	return ok && !b
}

// IsTrivial reports whether the schema imposes no constraint at all: the
// boolean schema true or an empty object.
func (s Schema) IsTrivial() bool {
	if s.IsTrue() {
		return true
	}
	return s.node.Kind() == value.KindObject && s.node.Len() == 0
}

// Keyword returns the raw value of a keyword. Boolean schemas carry none.
func (s Schema) Keyword(name string) (value.Value, bool) {
	return s.node.AsObject().Get(name)
}

func (s Schema) Has(name string) bool {
	_, ok := s.Keyword(name)
	return ok
}

// Type returns the declared type. ok is false when "type" is absent.
func (s Schema) Type() (t TypeKind, ok bool, err error) {
	raw, present := s.Keyword(kwType)
	if !present {
		return 0, false, nil
	}
	name, isText := raw.AsText()
	if !isText {
		return 0, true, keywordError{kwType, "a type name"}
	}
	t, known := ParseTypeKind(name)
	if !known {
		return 0, true, fmt.Errorf("unsupported type %q", name)
	}
	return t, true, nil
}

// keywordError reports a keyword whose value has the wrong shape.
type keywordError struct {
	keyword string
	want    string
}

func (e keywordError) Error() string {
	return fmt.Sprintf("keyword %q must be %s", e.keyword, e.want)
}

func (s Schema) number(name string) (float64, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return 0, false, nil
	}
	f, isNum := numberOf(raw)
	if !isNum {
		return 0, true, keywordError{name, "a number"}
	}
	return f, true, nil
}

// count reads a non-negative integer keyword. Numeric text is tolerated.
func (s Schema) count(name string) (int, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return 0, false, nil
	}
	f, isNum := numberOf(raw)
	if !isNum || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, true, keywordError{name, "a non-negative integer"}
	}
	return int(f), true, nil
}

func (s Schema) flag(name string) (bool, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return false, false, nil
	}
	b, isBool := booleanOf(raw)
	if !isBool {
		return false, true, keywordError{name, "a boolean"}
	}
	return b, true, nil
}

func (s Schema) text(name string) (string, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return "", false, nil
	}
	str, isText := raw.AsText()
	if !isText {
		return "", true, keywordError{name, "a string"}
	}
	return str, true, nil
}

func (s Schema) list(name string) ([]value.Value, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return nil, false, nil
	}
	if raw.Kind() != value.KindArray {
		return nil, true, keywordError{name, "an array"}
	}
	return raw.Elems(), true, nil
}

func (s Schema) object(name string) (*value.Object, bool, error) {
	raw, ok := s.Keyword(name)
	if !ok {
		return nil, false, nil
	}
	obj := raw.AsObject()
	if obj == nil {
		return nil, true, keywordError{name, "an object"}
	}
	return obj, true, nil
}

// subschema interprets an embedded value as a schema node.
func subschema(name string, raw value.Value) (Schema, error) {
	sub, err := NewSchema(raw)
	if err != nil {
		return Schema{}, keywordError{name, "a schema (object or boolean)"}
	}
	return sub, nil
}

// numberOf reads a numeric keyword or enum candidate. Numeric text counts.
func numberOf(v value.Value) (float64, bool) {
	if f, ok := v.AsFloat(); ok {
		return f, true
	}
	if str, ok := v.AsText(); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}

// booleanOf reads a Bool or the exact texts "true" and "false".
func booleanOf(v value.Value) (bool, bool) {
	if b, ok := v.AsBool(); ok {
		return b, true
	}
	switch str, _ := v.AsText(); {
	case v.Kind() != value.KindText:
		return false, false
	case str == "true":
		return true, true
	case str == "false":
		return false, true
	}
	return false, false
}
