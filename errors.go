package typefix

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodeUnknownKey      = "unknown_key"
	CodeDuplicateKey    = "duplicate_key"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeTooShort        = "too_short"
	CodeTooLong         = "too_long"
	CodePattern         = "pattern"
	CodeInvalidEnum     = "invalid_enum"
	CodeInvalidConst    = "invalid_const"
	CodeNotMultipleOf   = "not_multiple_of"
	CodeNotUnique       = "not_unique"
	CodeAdditionalItems = "additional_items"
	CodeNotNull         = "not_null"
	CodeFalseSchema     = "false_schema"
	CodeInvalidSchema   = "invalid_schema"
	CodeTooDeep         = "too_deep"
	CodeParseError      = "parse_error"
	CodeOverflow        = "overflow"
	CodeTruncated       = "truncated"
)

// FailureKind separates inputs that cannot be read as the declared type from
// well-typed inputs that break a declared constraint. Callers branch on it.
type FailureKind int

const (
	KindUnknown FailureKind = iota
	// KindCoercion: the lexeme cannot be reinterpreted as the declared type.
	KindCoercion
	// KindConstraint: the value is well-typed but fails a keyword.
	KindConstraint
)

func (k FailureKind) String() string {
	switch k {
	case KindCoercion:
		return "coercion"
	case KindConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Kind    FailureKind
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for
	// i18n and observability.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

func (it Issue) pointer() string {
	if it.Path == "" {
		return "/"
	}
	return it.Path
}

// Issues is a collection of validation errors that implements error. The
// engine stops at the first failure, so it normally holds a single entry.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /age: ...
		fmt.Fprintf(b, "%s at %s", it.Code, it.pointer())
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes of the contained issues to errors.Is/As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// KindOf returns the failure kind of the first issue carried by err.
func KindOf(err error) FailureKind {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return KindUnknown
	}
	return iss[0].Kind
}

// IsCoercion reports whether err is a coercion failure.
func IsCoercion(err error) bool { return KindOf(err) == KindCoercion }

// IsConstraint reports whether err is a constraint violation.
func IsConstraint(err error) bool { return KindOf(err) == KindConstraint }

// CodeOf returns the code of the first issue carried by err, or "".
func CodeOf(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}

func coercionErr(path, code, msg string, params map[string]any) Issues {
	return AppendIssues(nil, Issue{Path: path, Kind: KindCoercion, Code: code, Message: msg, Params: params})
}

func violation(path, code, msg string, params map[string]any) Issues {
	return AppendIssues(nil, Issue{Path: path, Kind: KindConstraint, Code: code, Message: msg, Params: params})
}

func schemaErr(path, format string, a ...any) Issues {
	return violation(path, CodeInvalidSchema, fmt.Sprintf(format, a...), nil)
}
