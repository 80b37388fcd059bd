package typefix

import (
	"github.com/reoring/typefix/value"
)

// null accepts JSON null and the text "null". The empty string is not null.
func (v *Validator) null(in value.Value, at cursor) (value.Value, error) {
	if in.IsNull() {
		return value.Null(), nil
	}
	if str, ok := in.AsText(); ok && str == "null" {
		return value.Null(), nil
	}
	return value.Value{}, violation(at.path, CodeNotNull, "expected null, got "+in.String(), nil)
}
