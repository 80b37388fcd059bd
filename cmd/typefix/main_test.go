package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestValidate_StdinToStdout(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", `{"type":"object","properties":{"qty":{"type":"integer"},"ok":{"type":"boolean"}}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", "-schema", schema}, strings.NewReader(`{"qty":"3.6","ok":"true"}`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	if got, want := strings.TrimSpace(stdout.String()), `{"qty":4,"ok":true}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestValidate_YAMLSchemaAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.yaml", "type: object\nproperties:\n  price:\n    type: number\n  name:\n    type: string\n")
	in := writeFile(t, dir, "doc.json", `{"name":12345,"price":"7.5"}`)
	out := filepath.Join(dir, "out.json")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"validate", "-schema", schema, "-in", in, "-o", out, "-conformance"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(string(b)), `{"name":"12345","price":7.5}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestValidate_FailureReportsKindCodePath(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", `{"type":"object","required":["id"]}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", "-schema", schema, "-lang", "ja"}, strings.NewReader(`{}`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	line := stderr.String()
	if !strings.Contains(line, "constraint required at /id") {
		t.Fatalf("unexpected report: %q", line)
	}
	if !strings.Contains(line, "必須") {
		t.Fatalf("expected japanese message: %q", line)
	}
}

func TestValidate_DuplicateKeyError(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", `{"type":"object"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", "-schema", schema, "-dup", "error", "-lang", "en"}, strings.NewReader(`{"a":1,"a":2}`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr.String(), "duplicate_key at /a") {
		t.Fatalf("unexpected report: %q", stderr.String())
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.json", `{"type":"integer"}`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"check", "-schema", schema}, strings.NewReader(`5`), &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	stdout.Reset()
	if code := run([]string{"check", "-schema", schema}, strings.NewReader(`"5"`), &stdout, &stderr); code != 1 {
		t.Fatalf("string document should not conform, exit %d", code)
	}
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d", code)
	}
	if code := run([]string{"validate"}, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("missing -schema should exit 2, got %d", code)
	}
	if code := run([]string{"validate", "-schema", "x.json", "-dup", "loud"}, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("bad -dup should exit 2, got %d", code)
	}
}
