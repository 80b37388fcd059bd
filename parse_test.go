package typefix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/reoring/typefix"
	"github.com/reoring/typefix/value"
)

func TestParse_NumberKinds(t *testing.T) {
	v := mustValue(t, `[1, -0, 1.0, 1e2, 9223372036854775807, 9223372036854775808]`)
	want := []value.Kind{value.KindInt, value.KindInt, value.KindFloat, value.KindFloat, value.KindInt, value.KindFloat}
	elems := v.Elems()
	if len(elems) != len(want) {
		t.Fatalf("len = %d", len(elems))
	}
	for i, k := range want {
		if elems[i].Kind() != k {
			t.Fatalf("elem %d: got %s want %s", i, elems[i].Kind(), k)
		}
	}
}

func TestParse_RoundTripKeepsOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":[true,null,"s"],"b":2.5},"m":"é\"x"}`
	got := render(t, mustValue(t, in))
	if want := `{"z":1,"a":{"y":[true,null,"s"],"b":2.5},"m":"é\"x"}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParse_MaxDepth(t *testing.T) {
	_, err := typefix.Parse([]byte(`{"a":{"b":{"c":1}}}`), typefix.ParseOpt{MaxDepth: 2})
	iss, ok := typefix.AsIssues(err)
	if !ok || iss[0].Code != typefix.CodeTooDeep {
		t.Fatalf("expected too_deep, got %v", err)
	}
	if iss[0].Path != "/a/b" {
		t.Fatalf("path = %q", iss[0].Path)
	}
}

func TestParse_DuplicateNestedPath(t *testing.T) {
	opt := typefix.ParseOpt{Strictness: typefix.Strictness{OnDuplicateKey: typefix.Error}}
	_, err := typefix.Parse([]byte(`[{"a":1,"a":2}]`), opt)
	iss, ok := typefix.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Code != typefix.CodeDuplicateKey || iss[0].Path != "/0/a" {
		t.Fatalf("got %+v", iss[0])
	}
}

func TestParseReader(t *testing.T) {
	v, err := typefix.ParseReader(strings.NewReader(` {"a":[1,2]} `), typefix.ParseOpt{})
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, v); got != `{"a":[1,2]}` {
		t.Fatalf("got %s", got)
	}
	_, err = typefix.ParseReader(strings.NewReader(`[1,2,3,4,5]`), typefix.ParseOpt{MaxBytes: 3})
	if typefix.CodeOf(err) != typefix.CodeTruncated {
		t.Fatalf("expected truncated, got %v", err)
	}
	_, err = typefix.ParseReader(strings.NewReader(``), typefix.ParseOpt{})
	if !typefix.IsCoercion(err) || typefix.CodeOf(err) != typefix.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseSchema(t *testing.T) {
	if _, err := typefix.ParseSchema([]byte(`"string"`)); typefix.CodeOf(err) != typefix.CodeInvalidSchema {
		t.Fatalf("text schema should be invalid, got %v", err)
	}
	_, err := typefix.ParseSchema([]byte(`{"type":}`))
	if !typefix.IsConstraint(err) || typefix.CodeOf(err) != typefix.CodeParseError {
		t.Fatalf("schema syntax error should be a constraint parse_error, got %v", err)
	}
	s, err := typefix.ParseSchema([]byte(` true `))
	if err != nil || !s.IsTrue() {
		t.Fatalf("true schema: %v", err)
	}
}

func TestSerialize_RejectsNonFinite(t *testing.T) {
	if _, err := typefix.Serialize(value.Float(math.Inf(1))); err == nil {
		t.Fatal("expected error for +Inf")
	}
}
