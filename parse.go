package typefix

import (
	"bytes"
	"errors"
	"io"

	eng "github.com/reoring/typefix/internal/engine"
	"github.com/reoring/typefix/source/gojson"
	"github.com/reoring/typefix/value"
)

// Parse decodes JSON text into a value tree. Integral numbers that fit in
// int64 become Int, other numbers Float; object key order is kept.
func Parse(text []byte, opt ParseOpt) (value.Value, error) {
	if opt.MaxBytes > 0 && int64(len(text)) > opt.MaxBytes {
		return value.Value{}, coercionErr("", CodeTruncated, "max bytes exceeded", map[string]any{"max": opt.MaxBytes})
	}
	return decode(gojson.NewBytes(text), opt)
}

// ParseReader decodes a single JSON value from r.
func ParseReader(r io.Reader, opt ParseOpt) (value.Value, error) {
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return value.Value{}, coercionErr("", CodeParseError, err.Error(), nil)
		}
		return Parse(data, opt)
	}
	return decode(gojson.NewReader(r), opt)
}

func decode(src eng.TokenSource, opt ParseOpt) (value.Value, error) {
	var sink func(eng.SimpleIssue)
	if opt.OnIssue != nil {
		sink = func(si eng.SimpleIssue) {
			opt.OnIssue(Issue{Path: rootless(si.Path), Kind: KindCoercion, Code: si.Code, Message: si.Message})
		}
	}
	enforced := eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	})
	v, err := eng.Decode(enforced)
	if err != nil {
		return value.Value{}, toIssues(err, KindCoercion)
	}
	return v, nil
}

// Serialize renders a value tree as compact JSON text.
func Serialize(v value.Value) (string, error) {
	b, err := value.Encode(v)
	if err != nil {
		return "", AppendIssues(nil, Issue{Kind: KindCoercion, Code: CodeInvalidType, Message: err.Error(), Cause: err})
	}
	return string(b), nil
}

// ParseSchema decodes schema text. The result must be an object or a boolean.
func ParseSchema(text []byte) (Schema, error) {
	node, err := Parse(bytes.TrimSpace(text), ParseOpt{MaxDepth: DefaultMaxDepth})
	if err != nil {
		return Schema{}, asSchemaParseError(err)
	}
	s, err := NewSchema(node)
	if err != nil {
		return Schema{}, violation("", CodeInvalidSchema, err.Error(), nil)
	}
	return s, nil
}

// asSchemaParseError re-labels a text failure as a constraint violation:
// an unreadable schema is a schema-authoring error, not a document problem.
func asSchemaParseError(err error) error {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return violation("", CodeParseError, "invalid JSON schema: "+err.Error(), nil)
	}
	it := iss[0]
	it.Kind = KindConstraint
	it.Message = "invalid JSON schema: " + it.Message
	return AppendIssues(nil, it)
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error, kind FailureKind) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Kind: kind, Code: ie.Code, Path: rootless(ie.Path), Message: ie.Message})
	}
	if errors.Is(err, eng.ErrEmptyInput) {
		return AppendIssues(nil, Issue{Kind: kind, Code: CodeParseError, Message: "empty input", Cause: err})
	}
	return AppendIssues(nil, Issue{Kind: kind, Code: CodeParseError, Message: err.Error(), Cause: err})
}

// rootless maps the engine's "/" root pointer to the empty pointer used by
// Issue.
func rootless(p string) string {
	if p == "/" {
		return ""
	}
	return p
}
