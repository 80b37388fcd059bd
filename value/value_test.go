package value_test

import (
	"math"
	"testing"

	"github.com/reoring/typefix/value"
)

func TestObject_OrderAndOverwrite(t *testing.T) {
	o := value.NewObject()
	o.Set("b", value.Int(1))
	o.Set("a", value.Int(2))
	o.Set("b", value.Int(3))

	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v", keys)
	}
	if v, _ := o.Get("b"); !value.Identical(v, value.Int(3)) {
		t.Fatalf("b = %s", v)
	}
	if !o.Delete("b") || o.Delete("b") {
		t.Fatal("Delete should report presence once")
	}
	if o.Has("b") || o.Len() != 1 {
		t.Fatalf("after delete: %v", o.Keys())
	}
}

func TestObject_CloneIsIndependent(t *testing.T) {
	o := value.NewObject()
	o.Set("x", value.Text("1"))
	c := o.Clone()
	c.Set("x", value.Int(1))
	c.Set("y", value.Null())
	if v, _ := o.Get("x"); !value.Identical(v, value.Text("1")) {
		t.Fatalf("original changed: %s", v)
	}
	if o.Len() != 1 {
		t.Fatalf("original grew: %v", o.Keys())
	}
}

func TestNilObjectIsEmpty(t *testing.T) {
	var o *value.Object
	if o.Len() != 0 || o.Has("a") {
		t.Fatal("nil object should behave as empty")
	}
	if _, ok := o.Get("a"); ok {
		t.Fatal("nil object has no members")
	}
	if got := value.ObjectOf(nil).String(); got != "{}" {
		t.Fatalf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	obj := func(kv ...any) value.Value {
		o := value.NewObject()
		for i := 0; i < len(kv); i += 2 {
			o.Set(kv[i].(string), kv[i+1].(value.Value))
		}
		return value.ObjectOf(o)
	}
	cases := []struct {
		name      string
		a, b      value.Value
		equal     bool
		identical bool
	}{
		{"int float", value.Int(1), value.Float(1), true, false},
		{"ints", value.Int(2), value.Int(2), true, true},
		{"text vs int", value.Text("1"), value.Int(1), false, false},
		{"nulls", value.Null(), value.Null(), true, true},
		{"arrays", value.Array(value.Int(1), value.Text("a")), value.Array(value.Float(1), value.Text("a")), true, false},
		{"array order", value.Array(value.Int(1), value.Int(2)), value.Array(value.Int(2), value.Int(1)), false, false},
		{"objects ignore order", obj("a", value.Int(1), "b", value.Int(2)), obj("b", value.Int(2), "a", value.Int(1)), true, false},
		{"objects same order", obj("a", value.Int(1)), obj("a", value.Int(1)), true, true},
		{"objects differ", obj("a", value.Int(1)), obj("a", value.Int(2)), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := value.Equal(tc.a, tc.b); got != tc.equal {
				t.Fatalf("Equal = %v", got)
			}
			if got := value.Identical(tc.a, tc.b); got != tc.identical {
				t.Fatalf("Identical = %v", got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	o := value.NewObject()
	o.Set("z", value.Float(0.1))
	o.Set("a", value.Array(value.Bool(false), value.Null(), value.Text("<&>")))
	o.Set("n", value.Int(-42))
	got, err := value.Encode(value.ObjectOf(o))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"z":0.1,"a":[false,null,"<&>"],"n":-42}`; string(got) != want {
		t.Fatalf("got %s want %s", got, want)
	}
	if _, err := value.Encode(value.Float(math.NaN())); err == nil {
		t.Fatal("NaN must not encode")
	}
}

func TestLexeme(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Null(), "null"},
		{value.Bool(true), "true"},
		{value.Int(12345), "12345"},
		{value.Float(7.5), "7.5"},
		{value.Float(2), "2"},
		{value.Text("x y"), "x y"},
		{value.Array(value.Int(1)), "[1]"},
	}
	for _, tc := range cases {
		if got := tc.v.Lexeme(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.v.Kind(), got, tc.want)
		}
	}
}

func TestLiteralSpelling(t *testing.T) {
	cases := []struct {
		v          value.Value
		lexeme     string
		serialized string
	}{
		{value.FloatLiteral(1.1, "1.10"), "1.10", "1.10"},
		{value.FloatLiteral(1.2345678901234567e19, "12345678901234567890"), "12345678901234567890", "12345678901234567890"},
		{value.IntLiteral(7, "7"), "7", "7"},
		{value.Float(0.00015), "0.00015", "0.00015"},
		{value.Float(1234567.5), "1234567.5", "1234567.5"},
		{value.Float(math.Copysign(0, -1)), "-0", "0"},
	}
	for _, tc := range cases {
		if got := tc.v.Lexeme(); got != tc.lexeme {
			t.Fatalf("lexeme: got %q want %q", got, tc.lexeme)
		}
		got, err := value.Encode(tc.v)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tc.serialized {
			t.Fatalf("encode: got %s want %s", got, tc.serialized)
		}
	}
	if !value.Equal(value.FloatLiteral(1.1, "1.10"), value.Float(1.1)) {
		t.Fatal("spelling must not affect equality")
	}
}

func TestIsIntegralLexeme(t *testing.T) {
	for s, want := range map[string]bool{
		"12": true, "-3": true, " 7 ": true, "1.0": false, "1e3": false, "2E1": false, "": false, "  ": false,
	} {
		if got := value.IsIntegralLexeme(s); got != want {
			t.Fatalf("%q: got %v", s, got)
		}
	}
}

func TestArrayCopiesInput(t *testing.T) {
	elems := []value.Value{value.Int(1)}
	a := value.Array(elems...)
	elems[0] = value.Int(9)
	if got := a.Elems()[0]; !value.Identical(got, value.Int(1)) {
		t.Fatalf("array aliased its input: %s", got)
	}
}
