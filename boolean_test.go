package typefix_test

import (
	"testing"

	"github.com/reoring/typefix"
)

func TestBoolean_Valid(t *testing.T) {
	runValid(t, []validCase{
		{"bool true", `{"type":"boolean"}`, `true`, `true`},
		{"text true", `{"type":"boolean"}`, `"true"`, `true`},
		{"text false", `{"type":"boolean"}`, `"false"`, `false`},
		{"const match", `{"type":"boolean","const":true}`, `"true"`, `true`},
		{"const as text", `{"type":"boolean","const":"false"}`, `false`, `false`},
		{"enum mixed candidates", `{"type":"boolean","enum":[true,"random text"]}`, `"true"`, `true`},
		{"enum text candidate", `{"type":"boolean","enum":["false"]}`, `false`, `false`},
	})
}

func TestBoolean_Failures(t *testing.T) {
	runFail(t, []failCase{
		{"empty text", `{"type":"boolean"}`, `""`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
		{"capitalized", `{"type":"boolean"}`, `"True"`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
		{"number", `{"type":"boolean"}`, `1`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
		{"null", `{"type":"boolean"}`, `null`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
		{"not a boolean among text enum", `{"type":"boolean","enum":["In the End","Numb"]}`, `"In the End"`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
		{"enum miss", `{"type":"boolean","enum":[true,"random text"]}`, `"false"`, typefix.KindConstraint, typefix.CodeInvalidEnum, ""},
		{"const mismatch", `{"type":"boolean","const":true}`, `false`, typefix.KindConstraint, typefix.CodeInvalidConst, ""},
		{"const not boolean", `{"type":"boolean","const":909}`, `true`, typefix.KindCoercion, typefix.CodeInvalidType, ""},
	})
}
