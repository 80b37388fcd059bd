package typefix

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/typefix/value"
)

// multipleOfEpsilon is the tolerance on the quotient value/multipleOf.
const multipleOfEpsilon = 1e-9

// numeric handles "integer" and "number". Constraints are checked on the
// float64 reading of the lexeme; narrowing to the declared type happens once,
// after every constraint passed.
func (v *Validator) numeric(s Schema, in value.Value, at cursor) (value.Value, error) {
	x, lexeme, err := readNumber(in, at)
	if err != nil {
		return value.Value{}, err
	}
	if err := checkBounds(s, x, at); err != nil {
		return value.Value{}, err
	}
	if err := checkMultipleOf(s, x, at); err != nil {
		return value.Value{}, err
	}
	if _, err := matchEnum(s, at, func(c value.Value) bool {
		f, ok := numberOf(c)
		return ok && f == x
	}); err != nil {
		return value.Value{}, err
	}
	if err := matchConst(s, at, func(c value.Value) bool {
		f, ok := numberOf(c)
		return ok && f == x
	}); err != nil {
		return value.Value{}, err
	}

	t, declared, err := s.Type()
	if err != nil {
		return value.Value{}, schemaErr(at.path, "%v", err)
	}
	switch {
	case declared && t == TypeInteger:
		return toInteger(x, lexeme, at)
	case declared && t == TypeNumber:
		return value.Float(x), nil
	case !declared:
		if in.Kind() != value.KindFloat && value.IsIntegralLexeme(lexeme) {
			return toInteger(x, lexeme, at)
		}
		return value.Float(x), nil
	}
	return value.Value{}, schemaErr(at.path, "numeric keywords applied to type %s", t)
}

// readNumber parses the lexeme of a leaf as float64.
func readNumber(in value.Value, at cursor) (float64, string, error) {
	switch in.Kind() {
	case value.KindInt, value.KindFloat:
		f, _ := in.AsFloat()
		return f, in.Lexeme(), nil
	case value.KindText:
		lexeme, _ := in.AsText()
		lexeme = strings.TrimSpace(lexeme)
		if lexeme == "" {
			return 0, "", coercionErr(at.path, CodeInvalidType, "cannot convert an empty string to a number", map[string]any{"expected": "number"})
		}
		f, err := strconv.ParseFloat(lexeme, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, "", coercionErr(at.path, CodeOverflow, "number "+strconv.Quote(lexeme)+" is out of range", nil)
		}
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, "", coercionErr(at.path, CodeInvalidType, "cannot convert "+strconv.Quote(lexeme)+" to a number", map[string]any{"expected": "number"})
		}
		return f, lexeme, nil
	default:
		return 0, "", coercionErr(at.path, CodeInvalidType, "cannot convert "+in.String()+" to a number", map[string]any{"expected": "number"})
	}
}

func checkBounds(s Schema, x float64, at cursor) error {
	type bound struct {
		kw        string
		violated  func(x, b float64) bool
		code      string
		paramName string
	}
	bounds := []bound{
		{kwMinimum, func(x, b float64) bool { return x < b }, CodeTooSmall, "min"},
		{kwMaximum, func(x, b float64) bool { return x > b }, CodeTooBig, "max"},
		{kwExclusiveMinimum, func(x, b float64) bool { return x <= b }, CodeTooSmall, "exclusiveMin"},
		{kwExclusiveMaximum, func(x, b float64) bool { return x >= b }, CodeTooBig, "exclusiveMax"},
	}
	for _, b := range bounds {
		limit, ok, err := s.number(b.kw)
		if err != nil {
			return schemaErr(at.path, "%v", err)
		}
		if ok && b.violated(x, limit) {
			return violation(at.path, b.code, "value violates "+b.kw+" "+formatNumber(limit), map[string]any{b.paramName: limit, "got": x})
		}
	}
	return nil
}

func checkMultipleOf(s Schema, x float64, at cursor) error {
	d, ok, err := s.number(kwMultipleOf)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if !ok {
		return nil
	}
	if d <= 0 {
		return schemaErr(at.path, "keyword %q must be greater than 0", kwMultipleOf)
	}
	q := x / d
	if math.Abs(q-math.Round(q)) > multipleOfEpsilon {
		return violation(at.path, CodeNotMultipleOf, "value is not a multiple of "+formatNumber(d), map[string]any{"multipleOf": d, "got": x})
	}
	return nil
}

// toInteger narrows to int64. Lexemes that already spell an int64 are kept
// exactly; everything else rounds half up, so 10.5 becomes 11 and -2.5
// becomes -2. The fraction is taken as x-floor(x), which is exact; adding 0.5
// first would round in float64 (0.49999999999999994 would become 1).
func toInteger(x float64, lexeme string, at cursor) (value.Value, error) {
	if value.IsIntegralLexeme(lexeme) {
		if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return value.Int(i), nil
		}
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return value.Value{}, coercionErr(at.path, CodeOverflow, "number "+formatNumber(x)+" does not fit in a 64-bit integer", nil)
	}
	return value.Int(int64(r)), nil
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
