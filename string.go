package typefix

import (
	"regexp"
	"unicode/utf8"

	"github.com/reoring/typefix/value"
)

// str validates a string. Scalar leaves other than null are read through
// their lexeme, so 123 under {"type":"string"} becomes "123".
func (v *Validator) str(s Schema, in value.Value, at cursor) (value.Value, error) {
	var text string
	switch in.Kind() {
	case value.KindText, value.KindBool, value.KindInt, value.KindFloat:
		text = in.Lexeme()
	default:
		return value.Value{}, coercionErr(at.path, CodeInvalidType, "cannot convert "+in.Kind().String()+" to string", map[string]any{"expected": "string"})
	}

	if err := checkCount(s, at, utf8.RuneCountInString(text), kwMinLength, kwMaxLength, "character"); err != nil {
		return value.Value{}, err
	}
	pattern, ok, err := s.text(kwPattern)
	if err != nil {
		return value.Value{}, schemaErr(at.path, "%v", err)
	}
	if ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return value.Value{}, schemaErr(at.path, "invalid pattern %q: %v", pattern, err)
		}
		if !re.MatchString(text) {
			return value.Value{}, violation(at.path, CodePattern, "value does not match pattern "+pattern, map[string]any{"pattern": pattern})
		}
	}
	sameText := func(c value.Value) bool {
		ct, isText := c.AsText()
		return isText && ct == text
	}
	if _, err := matchEnum(s, at, sameText); err != nil {
		return value.Value{}, err
	}
	if err := matchConst(s, at, sameText); err != nil {
		return value.Value{}, err
	}
	return value.Text(text), nil
}
