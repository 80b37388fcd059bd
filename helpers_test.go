package typefix_test

import (
	"testing"

	"github.com/reoring/typefix"
	"github.com/reoring/typefix/value"
)

func mustSchema(t *testing.T, text string) typefix.Schema {
	t.Helper()
	s, err := typefix.ParseSchema([]byte(text))
	if err != nil {
		t.Fatalf("ParseSchema(%s): %v", text, err)
	}
	return s
}

func mustValue(t *testing.T, text string) value.Value {
	t.Helper()
	v, err := typefix.Parse([]byte(text), typefix.ParseOpt{})
	if err != nil {
		t.Fatalf("Parse(%s): %v", text, err)
	}
	return v
}

func render(t *testing.T, v value.Value) string {
	t.Helper()
	s, err := typefix.Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return s
}

// validCase expects success with the given corrected JSON text.
type validCase struct {
	name   string
	schema string
	in     string
	want   string
}

// failCase expects a failure of the given kind and code at path.
type failCase struct {
	name   string
	schema string
	in     string
	kind   typefix.FailureKind
	code   string
	path   string
}

func runValid(t *testing.T, cases []validCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := typefix.Validate(mustSchema(t, tc.schema), mustValue(t, tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := render(t, out); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func runFail(t *testing.T, cases []failCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := typefix.Validate(mustSchema(t, tc.schema), mustValue(t, tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			iss, ok := typefix.AsIssues(err)
			if !ok || len(iss) != 1 {
				t.Fatalf("expected exactly one issue, got %v", err)
			}
			if iss[0].Kind != tc.kind {
				t.Fatalf("kind = %s want %s (%v)", iss[0].Kind, tc.kind, err)
			}
			if tc.code != "" && iss[0].Code != tc.code {
				t.Fatalf("code = %s want %s (%v)", iss[0].Code, tc.code, err)
			}
			if iss[0].Path != tc.path {
				t.Fatalf("path = %q want %q", iss[0].Path, tc.path)
			}
		})
	}
}
