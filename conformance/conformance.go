// Package conformance cross-checks documents against a full JSON Schema
// implementation (github.com/xeipuuv/gojsonschema).
//
// typefix coerces before it validates, so its output is expected to satisfy
// the schema under strict draft semantics. Check confirms that and reports
// anything the reference validator still rejects, for example an integer
// rounded past a bound.
package conformance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Violation is one finding of the reference validator.
type Violation struct {
	Path    string // JSON Pointer
	Type    string // gojsonschema error type, e.g. "number_gte"
	Message string
}

// Report is the outcome of a Check.
type Report struct {
	Valid      bool
	Violations []Violation
}

// Error lets a failed Report travel as an error.
func (r *Report) Error() string {
	if r == nil || r.Valid {
		return ""
	}
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, fmt.Sprintf("%s at %s: %s", v.Type, pointerOrRoot(v.Path), v.Message))
	}
	return "conformance: " + strings.Join(parts, "; ")
}

// Checker holds a compiled schema and can be reused across documents.
type Checker struct {
	schema *gojsonschema.Schema
}

// ErrEmpty is returned for empty schema or document text.
var ErrEmpty = errors.New("conformance: empty input")

// NewChecker compiles schemaText with the reference implementation.
func NewChecker(schemaText string) (*Checker, error) {
	if strings.TrimSpace(schemaText) == "" {
		return nil, ErrEmpty
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaText))
	if err != nil {
		return nil, fmt.Errorf("conformance: compile schema: %w", err)
	}
	return &Checker{schema: s}, nil
}

// Check validates documentText. A nil error means the document conforms; a
// non-conforming document yields a *Report error.
func (c *Checker) Check(documentText string) error {
	if strings.TrimSpace(documentText) == "" {
		return ErrEmpty
	}
	res, err := c.schema.Validate(gojsonschema.NewStringLoader(documentText))
	if err != nil {
		return fmt.Errorf("conformance: validate: %w", err)
	}
	if res.Valid() {
		return nil
	}
	rep := &Report{Valid: false}
	for _, re := range res.Errors() {
		rep.Violations = append(rep.Violations, Violation{
			Path:    fieldToPointer(re.Field()),
			Type:    re.Type(),
			Message: re.Description(),
		})
	}
	return rep
}

// Check is a one-shot NewChecker + Check.
func Check(schemaText, documentText string) error {
	c, err := NewChecker(schemaText)
	if err != nil {
		return err
	}
	return c.Check(documentText)
}

const rootField = "(root)"

// fieldToPointer converts gojsonschema's dotted field ("items.2.price",
// "(root)") to a JSON Pointer. Keys containing dots cannot be told apart.
func fieldToPointer(field string) string {
	if field == "" || field == rootField {
		return ""
	}
	field = strings.TrimPrefix(field, rootField+".")
	segs := strings.Split(field, ".")
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		s = strings.ReplaceAll(s, "~", "~0")
		s = strings.ReplaceAll(s, "/", "~1")
		b.WriteString(s)
	}
	return b.String()
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
