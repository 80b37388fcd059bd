package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == dictionaries["en"]["invalid_type"] {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_EveryCodeHasBothLanguages(t *testing.T) {
	for code := range dictionaries["en"] {
		if _, ok := dictionaries["ja"][code]; !ok {
			t.Errorf("ja missing %q", code)
		}
	}
	for code := range dictionaries["ja"] {
		if _, ok := dictionaries["en"][code]; !ok {
			t.Errorf("en missing %q", code)
		}
	}
}

func TestTranslator_ParamsAndFallback(t *testing.T) {
	defer SetLanguage("en")

	if got, want := T("too_small", map[string]string{"min": "1", "got": "0"}), "value is too small (got=0, min=1)"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", got)
	}
	SetLanguage("fr")
	if got := T("required", nil); got != dictionaries["en"]["required"] {
		t.Fatalf("unknown language should fall back to en, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	if got := T("pattern", nil); got != "X:pattern" {
		t.Fatalf("got %q", got)
	}
	SetTranslator(nil)
	if got := T("pattern", nil); got != dictionaries["en"]["pattern"] {
		t.Fatalf("nil translator should restore default, got %q", got)
	}
}
