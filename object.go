package typefix

import (
	"regexp"

	"github.com/reoring/typefix/value"
)

// object checks required keys and property counts on the input, then
// corrects members through properties, patternProperties and
// additionalProperties, in that order. Key order is preserved.
func (v *Validator) object(s Schema, in value.Value, at cursor) (value.Value, error) {
	obj := in.AsObject()
	if obj == nil {
		return value.Value{}, violation(at.path, CodeInvalidType, "expected an object, got "+in.Kind().String(), map[string]any{"expected": "object"})
	}
	if err := checkRequired(s, obj, at); err != nil {
		return value.Value{}, err
	}
	if err := checkCount(s, at, obj.Len(), kwMinProperties, kwMaxProperties, "property"); err != nil {
		return value.Value{}, err
	}

	out := obj.Clone()
	declared, err := v.applyProperties(s, obj, out, at)
	if err != nil {
		return value.Value{}, err
	}
	matched, err := v.applyPatternProperties(s, out, at)
	if err != nil {
		return value.Value{}, err
	}
	var extra []string
	for _, k := range obj.Keys() {
		if !declared[k] && !matched[k] {
			extra = append(extra, k)
		}
	}
	if err := v.applyAdditionalProperties(s, extra, out, at); err != nil {
		return value.Value{}, err
	}
	return value.ObjectOf(out), nil
}

func checkRequired(s Schema, obj *value.Object, at cursor) error {
	names, ok, err := s.list(kwRequired)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if !ok {
		return nil
	}
	for _, n := range names {
		name, isText := n.AsText()
		if !isText {
			return schemaErr(at.path, "keyword %q must list property names", kwRequired)
		}
		if !obj.Has(name) {
			return violation(at.field(name).path, CodeRequired, "required property "+name+" is missing", map[string]any{"key": name})
		}
	}
	return nil
}

// applyProperties corrects every input key that has a schema under
// "properties" and returns the set of keys declared there.
func (v *Validator) applyProperties(s Schema, obj, out *value.Object, at cursor) (map[string]bool, error) {
	props, ok, err := s.object(kwProperties)
	if err != nil {
		return nil, schemaErr(at.path, "%v", err)
	}
	declared := make(map[string]bool)
	if !ok {
		return declared, nil
	}
	for _, k := range obj.Keys() {
		raw, has := props.Get(k)
		if !has {
			continue
		}
		declared[k] = true
		sub, err := subschema(kwProperties, raw)
		if err != nil {
			return nil, schemaErr(at.field(k).path, "%v", err)
		}
		cur, _ := out.Get(k)
		nv, err := v.validate(sub, cur, at.field(k))
		if err != nil {
			return nil, err
		}
		out.Set(k, nv)
	}
	return declared, nil
}

// applyPatternProperties runs each pattern in declared order over the keys it
// finds (search, not full match). A key matching several patterns is corrected
// by each of them in turn.
func (v *Validator) applyPatternProperties(s Schema, out *value.Object, at cursor) (map[string]bool, error) {
	patterns, ok, err := s.object(kwPatternProperties)
	if err != nil {
		return nil, schemaErr(at.path, "%v", err)
	}
	matched := make(map[string]bool)
	if !ok {
		return matched, nil
	}
	keys := out.Keys()
	var ferr error
	patterns.Range(func(pattern string, raw value.Value) bool {
		re, err := regexp.Compile(pattern)
		if err != nil {
			ferr = schemaErr(at.path, "invalid patternProperties pattern %q: %v", pattern, err)
			return false
		}
		sub, err := subschema(kwPatternProperties, raw)
		if err != nil {
			ferr = schemaErr(at.path, "%v", err)
			return false
		}
		for _, k := range keys {
			if !re.MatchString(k) {
				continue
			}
			matched[k] = true
			cur, _ := out.Get(k)
			nv, err := v.validate(sub, cur, at.field(k))
			if err != nil {
				ferr = err
				return false
			}
			out.Set(k, nv)
		}
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return matched, nil
}

func (v *Validator) applyAdditionalProperties(s Schema, extra []string, out *value.Object, at cursor) error {
	raw, ok := s.Keyword(kwAdditionalProperties)
	if !ok || len(extra) == 0 {
		return nil
	}
	sub, err := subschema(kwAdditionalProperties, raw)
	if err != nil {
		return schemaErr(at.path, "%v", err)
	}
	if sub.IsFalse() {
		return violation(at.field(extra[0]).path, CodeUnknownKey, "additional property "+extra[0]+" is not allowed", map[string]any{"key": extra[0]})
	}
	for _, k := range extra {
		cur, _ := out.Get(k)
		nv, err := v.validate(sub, cur, at.field(k))
		if err != nil {
			return err
		}
		out.Set(k, nv)
	}
	return nil
}
