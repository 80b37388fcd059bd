package engine

import (
	"errors"
	"io"
	"strconv"

	"github.com/reoring/typefix/value"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrEmptyInput is returned when the source holds no value at all.
var ErrEmptyInput = errors.New("engine: empty input")

// Decode builds a value tree from src. The source must hold exactly one JSON
// value; anything after it is reported as a parse error.
func Decode(src TokenSource) (value.Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return value.Value{}, ErrEmptyInput
		}
		return value.Value{}, err
	}
	v, err := decodeValue(src, tok)
	if err != nil {
		return value.Value{}, err
	}
	switch _, err := src.NextToken(); {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return value.Value{}, err
	default:
		return value.Value{}, IssueError{SimpleIssue{Code: "parse_error", Path: "/", Message: "unexpected data after top-level value"}}
	}
}

func decodeValue(src TokenSource, tok Token) (value.Value, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src)
	case KindBeginArray:
		return decodeArray(src)
	case KindString:
		return value.Text(tok.String), nil
	case KindNumber:
		return decodeNumber(tok.Number)
	case KindBool:
		return value.Bool(tok.Bool), nil
	case KindNull:
		return value.Null(), nil
	default:
		return value.Value{}, io.ErrUnexpectedEOF
	}
}

func decodeObject(src TokenSource) (value.Value, error) {
	obj := value.NewObject()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return value.Value{}, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return value.ObjectOf(obj), nil
		}
		if tok.Kind != KindKey {
			return value.Value{}, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return value.Value{}, unexpectedEOF(err)
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return value.Value{}, err
		}
		// duplicate keys that survive enforcement keep the first position and
		// the last value
		obj.Set(tok.String, v)
	}
}

func decodeArray(src TokenSource) (value.Value, error) {
	var arr []value.Value
	for {
		tok, err := src.NextToken()
		if err != nil {
			return value.Value{}, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return value.Array(arr...), nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return value.Value{}, err
		}
		arr = append(arr, v)
	}
}

// decodeNumber keeps integral literals that fit in int64 as Int and turns
// everything else into Float. The literal travels with the value.
func decodeNumber(lit string) (value.Value, error) {
	if value.IsIntegralLexeme(lit) {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return value.IntLiteral(i, lit), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return value.Value{}, IssueError{SimpleIssue{Code: "parse_error", Path: "/", Message: "invalid number literal " + strconv.Quote(lit)}}
	}
	return value.FloatLiteral(f, lit), nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
