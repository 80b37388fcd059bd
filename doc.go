// Package typefix validates JSON documents against a JSON Schema subset and
// coerces scalar leaves to the types the schema declares.
//
// Where a plain validator would only report that "42" is not an integer,
// typefix rewrites it to 42 and keeps going, so a loosely typed payload comes
// out the other side shaped the way the schema says:
//
//	out, err := typefix.ValidateDocument(`{"qty":"3.6"}`,
//		`{"type":"object","properties":{"qty":{"type":"integer"}}}`)
//	// out == `{"qty":4}`
//
// Supported keywords: type, enum, const, minimum, maximum, exclusiveMinimum,
// exclusiveMaximum, multipleOf, minLength, maxLength, pattern, items,
// additionalItems, minItems, maxItems, uniqueItems, required, properties,
// patternProperties, additionalProperties, minProperties and maxProperties.
//
// Failures are reported as Issues (JSON Pointer, code, message). Each issue
// carries a FailureKind: KindCoercion when a value cannot be read as the
// declared type, KindConstraint when a well-typed value breaks a keyword.
// Validation is fail-fast and returns the first failure only.
//
// Layout:
//   - value/: the JSON value tree with ordered objects
//   - internal/engine: token decoding with duplicate-key/depth/size enforcement
//   - source/gojson: goccy/go-json token driver
//   - conformance/: cross-check against a reference validator
//   - i18n/: translated messages for issue codes
//   - cmd/typefix: command line front end
package typefix
