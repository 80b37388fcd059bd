package typefix

import (
	"github.com/reoring/typefix/value"
)

// boolean accepts a Bool or the exact texts "true"/"false".
func (v *Validator) boolean(s Schema, in value.Value, at cursor) (value.Value, error) {
	b, ok := booleanOf(in)
	if !ok {
		msg := "cannot convert " + in.String() + " to boolean"
		if str, isText := in.AsText(); isText && str == "" {
			msg = "cannot convert an empty string to boolean"
		}
		return value.Value{}, coercionErr(at.path, CodeInvalidType, msg, map[string]any{"expected": "boolean"})
	}
	if c, has := s.Keyword(kwConst); has {
		if _, isBool := booleanOf(c); !isBool {
			return value.Value{}, coercionErr(at.path, CodeInvalidType, "const "+c.String()+" is not a boolean", map[string]any{"expected": "boolean"})
		}
	}
	if err := matchConst(s, at, func(c value.Value) bool {
		cb, _ := booleanOf(c)
		return cb == b
	}); err != nil {
		return value.Value{}, err
	}
	if _, err := matchEnum(s, at, func(c value.Value) bool {
		cb, ok := booleanOf(c)
		return ok && cb == b
	}); err != nil {
		return value.Value{}, err
	}
	return value.Bool(b), nil
}
