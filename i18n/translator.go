package i18n

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional parameters to embed in the message (for example,
// "min", "max" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":     "value cannot be read as the declared type",
		"required":         "required property missing",
		"unknown_key":      "property not allowed",
		"duplicate_key":    "duplicate key",
		"too_small":        "value is too small",
		"too_big":          "value is too big",
		"too_short":        "too short",
		"too_long":         "too long",
		"pattern":          "does not match pattern",
		"invalid_enum":     "not one of the allowed values",
		"invalid_const":    "does not equal the constant",
		"not_multiple_of":  "not a multiple of the divisor",
		"not_unique":       "array items are not unique",
		"additional_items": "additional array items not allowed",
		"not_null":         "value is not null",
		"false_schema":     "no value is valid",
		"invalid_schema":   "invalid schema",
		"too_deep":         "nesting too deep",
		"parse_error":      "parse error",
		"overflow":         "number out of range",
		"truncated":        "input too large",
	},
	"ja": {
		"invalid_type":     "宣言された型として解釈できません",
		"required":         "必須プロパティが不足しています",
		"unknown_key":      "許可されていないプロパティです",
		"duplicate_key":    "キーが重複しています",
		"too_small":        "値が小さすぎます",
		"too_big":          "値が大きすぎます",
		"too_short":        "短すぎます",
		"too_long":         "長すぎます",
		"pattern":          "パターンに一致しません",
		"invalid_enum":     "許可された値ではありません",
		"invalid_const":    "定数と一致しません",
		"not_multiple_of":  "倍数ではありません",
		"not_unique":       "配列の要素が重複しています",
		"additional_items": "追加の配列要素は許可されていません",
		"not_null":         "null ではありません",
		"false_schema":     "どの値も許可されていません",
		"invalid_schema":   "スキーマが不正です",
		"too_deep":         "ネストが深すぎます",
		"parse_error":      "解析エラー",
		"overflow":         "数値が範囲外です",
		"truncated":        "入力が大きすぎます",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		msg, ok = dictionaries["en"][code]
	}
	if !ok {
		msg = code
	}
	if len(data) == 0 {
		return msg
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+data[k])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
