package typefix

import (
	"github.com/reoring/typefix/value"
)

// matchEnum reports whether any candidate of the "enum" keyword matches.
// present is false when the schema declares no enum.
func matchEnum(s Schema, at cursor, match func(value.Value) bool) (present bool, err error) {
	candidates, ok, err := s.list(kwEnum)
	if err != nil {
		return true, schemaErr(at.path, "%v", err)
	}
	if !ok {
		return false, nil
	}
	for _, c := range candidates {
		if match(c) {
			return true, nil
		}
	}
	return true, violation(at.path, CodeInvalidEnum, "value is not one of the enumerated values", map[string]any{"enum": value.Array(candidates...).String()})
}

// matchConst checks the "const" keyword with the given comparison.
func matchConst(s Schema, at cursor, match func(value.Value) bool) error {
	c, ok := s.Keyword(kwConst)
	if !ok {
		return nil
	}
	if !match(c) {
		return violation(at.path, CodeInvalidConst, "value does not equal the constant "+c.String(), map[string]any{"const": c.String()})
	}
	return nil
}

// checkCount applies an inclusive lower/upper bound keyword pair to n.
func checkCount(s Schema, at cursor, n int, minKw, maxKw, what string) error {
	lo, ok, err := s.count(minKw)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if ok && n < lo {
		return violation(at.path, tooFewCode(minKw), what+" count is below "+minKw, map[string]any{"min": lo, "got": n})
	}
	hi, ok, err := s.count(maxKw)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if ok && n > hi {
		return violation(at.path, tooManyCode(maxKw), what+" count is above "+maxKw, map[string]any{"max": hi, "got": n})
	}
	return nil
}

func tooFewCode(kw string) string {
	if kw == kwMinLength {
		return CodeTooShort
	}
	return CodeTooSmall
}

func tooManyCode(kw string) string {
	if kw == kwMaxLength {
		return CodeTooLong
	}
	return CodeTooBig
}
