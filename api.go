package typefix

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reoring/typefix/value"
)

const falseSchemaMessage = "schema is false: no document is valid"

// ValidateDocument parses documentText and schemaText, validates and coerces
// the document against the schema, and returns the corrected document as
// compact JSON text.
//
// A schema of {} or true returns documentText unchanged; false rejects every
// document. Failures are Issues carrying KindCoercion or KindConstraint.
func ValidateDocument(documentText, schemaText string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if strings.TrimSpace(schemaText) == "" {
		return "", o.logFailure(coercionErr("", CodeParseError, "schema text is empty", nil))
	}
	if strings.TrimSpace(documentText) == "" {
		return "", o.logFailure(coercionErr("", CodeParseError, "document text is empty", nil))
	}
	node, err := Parse([]byte(schemaText), schemaParseOpt(o.Parse))
	if err != nil {
		return "", o.logFailure(asSchemaParseError(err))
	}
	s, err := NewSchema(node)
	if err != nil {
		return "", o.logFailure(violation("", CodeInvalidSchema, err.Error(), nil))
	}
	return validateText(documentText, s, o)
}

// ValidateDocumentWithSchema is ValidateDocument for callers holding an
// already parsed Schema.
func ValidateDocumentWithSchema(documentText string, s Schema, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if strings.TrimSpace(documentText) == "" {
		return "", o.logFailure(coercionErr("", CodeParseError, "document text is empty", nil))
	}
	if s.node.Kind() != value.KindObject && s.node.Kind() != value.KindBool {
		return "", o.logFailure(violation("", CodeInvalidSchema, "schema must be a JSON object or boolean", nil))
	}
	return validateText(documentText, s, o)
}

func validateText(documentText string, s Schema, o Options) (string, error) {
	switch {
	case s.IsFalse():
		return "", o.logFailure(violation("", CodeFalseSchema, falseSchemaMessage, nil))
	case s.IsTrivial():
		o.Logger.Debug("trivial schema, document returned unchanged")
		return documentText, nil
	}
	doc, err := Parse([]byte(documentText), o.Parse)
	if err != nil {
		return "", o.logFailure(err)
	}
	v := &Validator{maxDepth: o.MaxDepth}
	out, err := v.Validate(s, doc)
	if err != nil {
		return "", o.logFailure(err)
	}
	text, err := Serialize(out)
	if err != nil {
		return "", o.logFailure(err)
	}
	o.Logger.Debug("document validated", slog.Int("bytes", len(text)))
	return text, nil
}

// schemaParseOpt keeps duplicate handling from the caller but never leaves
// schema nesting unbounded.
func schemaParseOpt(p ParseOpt) ParseOpt {
	if p.MaxDepth <= 0 {
		p.MaxDepth = DefaultMaxDepth
	}
	p.MaxBytes = 0
	return p
}

func (o Options) logFailure(err error) error {
	if !o.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return err
	}
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		o.Logger.Debug("validation failed", slog.Any("err", err))
		return err
	}
	it := iss[0]
	o.Logger.Debug("validation failed",
		slog.String("kind", it.Kind.String()),
		slog.String("code", it.Code),
		slog.String("path", it.pointer()),
		slog.String("msg", it.Message),
	)
	return err
}
