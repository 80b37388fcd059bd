package typefix

import (
	"github.com/reoring/typefix/value"
)

// array validates the item count, corrects every element through the
// dispatcher and finally checks uniqueness on the corrected elements.
func (v *Validator) array(s Schema, in value.Value, at cursor) (value.Value, error) {
	if in.Kind() != value.KindArray {
		return value.Value{}, violation(at.path, CodeInvalidType, "expected an array, got "+in.Kind().String(), map[string]any{"expected": "array"})
	}
	elems := in.Elems()
	if err := checkCount(s, at, len(elems), kwMinItems, kwMaxItems, "item"); err != nil {
		return value.Value{}, err
	}

	out := make([]value.Value, len(elems))
	items, hasItems := s.Keyword(kwItems)
	switch {
	case !hasItems:
		copy(out, elems)
	case items.Kind() == value.KindArray:
		if err := v.tupleItems(s, items.Elems(), elems, out, at); err != nil {
			return value.Value{}, err
		}
	default:
		sub, err := subschema(kwItems, items)
		if err != nil {
			return value.Value{}, schemaErr(at.path, "%v", err)
		}
		for i, e := range elems {
			if out[i], err = v.validate(sub, e, at.index(i)); err != nil {
				return value.Value{}, err
			}
		}
	}

	unique, _, err := s.flag(kwUniqueItems)
	if err != nil {
		return value.Value{}, schemaErr(at.path, "%v", err)
	}
	if unique {
		for i := 1; i < len(out); i++ {
			for j := 0; j < i; j++ {
				if value.Equal(out[i], out[j]) {
					return value.Value{}, violation(at.index(i).path, CodeNotUnique, "array items must be unique", map[string]any{"duplicateOf": j})
				}
			}
		}
	}
	return value.Array(out...), nil
}

// tupleItems validates elements positionally; elements past the tuple are
// governed by additionalItems.
func (v *Validator) tupleItems(s Schema, tuple, elems, out []value.Value, at cursor) error {
	for i := 0; i < len(elems) && i < len(tuple); i++ {
		sub, err := subschema(kwItems, tuple[i])
		if err != nil {
			return schemaErr(at.path, "%v", err)
		}
		if out[i], err = v.validate(sub, elems[i], at.index(i)); err != nil {
			return err
		}
	}
	if len(elems) <= len(tuple) {
		return nil
	}

	additional, has := s.Keyword(kwAdditionalItems)
	if b, isBool := additional.AsBool(); !has || (isBool && b) {
		copy(out[len(tuple):], elems[len(tuple):])
		return nil
	}
	sub, err := subschema(kwAdditionalItems, additional)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if sub.IsFalse() {
		return violation(at.index(len(tuple)).path, CodeAdditionalItems, "additional items are not allowed", map[string]any{"max": len(tuple), "got": len(elems)})
	}
	for i := len(tuple); i < len(elems); i++ {
		if out[i], err = v.validate(sub, elems[i], at.index(i)); err != nil {
			return err
		}
	}
	return nil
}
