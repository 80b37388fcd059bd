package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/reoring/typefix"
	"github.com/reoring/typefix/conformance"
	"github.com/reoring/typefix/i18n"
	"github.com/reoring/typefix/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "typefix CLI\n\nUsage:\n  typefix validate -schema schema.json|schema.yaml [-in doc.json] [-o out.json] [-conformance] [-lang ja] [-v]\n  typefix check -schema schema.json|schema.yaml [-in doc.json]\n\nNotes:\n  - validate prints the corrected document; check only runs the reference validator.\n  - Reads the document from stdin when -in is omitted.")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdin, stdout, stderr)
	case "check":
		return checkCmd(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
}

type validateFlags struct {
	schema      string
	in          string
	out         string
	conformance bool
	lang        string
	verbose     bool
	maxDepth    int
	maxBytes    int64
	dup         string
}

func validateCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f validateFlags
	fs.StringVar(&f.schema, "schema", "", "schema file (.json, .yaml or .yml)")
	fs.StringVar(&f.in, "in", "", "document file (default: stdin)")
	fs.StringVar(&f.out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&f.conformance, "conformance", false, "re-check the corrected document with the reference validator")
	fs.StringVar(&f.lang, "lang", "en", "message language (en|ja)")
	fs.BoolVar(&f.verbose, "v", false, "enable verbose logs")
	fs.IntVar(&f.maxDepth, "max-depth", typefix.DefaultMaxDepth, "maximum nesting depth")
	fs.Int64Var(&f.maxBytes, "max-bytes", 0, "maximum document size in bytes (0: unlimited)")
	fs.StringVar(&f.dup, "dup", "ignore", "duplicate keys: ignore|warn|error")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if f.schema == "" {
		fs.Usage()
		return 2
	}
	dup, err := parseSeverity(f.dup)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	i18n.SetLanguage(f.lang)
	logger := newLogger(stderr, f.verbose)

	s, err := typefix.LoadSchemaFile(f.schema)
	if err != nil {
		return report(stderr, err)
	}
	doc, err := readInput(f.in, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Debug("loaded inputs", slog.String("schema", f.schema), slog.Int("bytes", len(doc)))

	popt := typefix.ParseOpt{
		Strictness: typefix.Strictness{OnDuplicateKey: dup},
		MaxDepth:   f.maxDepth,
		MaxBytes:   f.maxBytes,
		OnIssue: func(it typefix.Issue) {
			logger.Warn(i18n.T(it.Code, nil), slog.String("code", it.Code), slog.String("path", it.Path))
		},
	}
	out, err := typefix.ValidateDocumentWithSchema(doc, s,
		typefix.WithMaxDepth(f.maxDepth),
		typefix.WithParseOpt(popt),
		typefix.WithLogger(logger),
	)
	if err != nil {
		return report(stderr, err)
	}

	if f.conformance {
		schemaText, err := value.Encode(s.Node())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if err := conformance.Check(string(schemaText), out); err != nil {
			logger.Error("corrected document does not conform", slog.Any("err", err))
			fmt.Fprintln(stderr, err)
			return 1
		}
		logger.Debug("conformance check passed")
	}

	if err := writeOutput(f.out, stdout, out); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func checkCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath, in string
	fs.StringVar(&schemaPath, "schema", "", "schema file (.json, .yaml or .yml)")
	fs.StringVar(&in, "in", "", "document file (default: stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schemaPath == "" {
		fs.Usage()
		return 2
	}
	s, err := typefix.LoadSchemaFile(schemaPath)
	if err != nil {
		return report(stderr, err)
	}
	schemaText, err := value.Encode(s.Node())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	doc, err := readInput(in, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := conformance.Check(string(schemaText), doc); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, "ok")
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "[15:04:05.000]",
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func parseSeverity(s string) (typefix.Severity, error) {
	switch s {
	case "ignore", "":
		return typefix.Ignore, nil
	case "warn":
		return typefix.Warn, nil
	case "error":
		return typefix.Error, nil
	}
	return typefix.Ignore, fmt.Errorf("invalid -dup %q (want ignore|warn|error)", s)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func writeOutput(path string, stdout io.Writer, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// report prints one line per issue and returns the exit code.
func report(w io.Writer, err error) int {
	iss, ok := typefix.AsIssues(err)
	if !ok {
		fmt.Fprintln(w, err)
		return 1
	}
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(w, "%s %s at %s: %s\n", it.Kind, it.Code, path, i18n.T(it.Code, stringParams(it.Params)))
	}
	return 1
}

func stringParams(p map[string]any) map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		switch t := v.(type) {
		case string:
			out[k] = t
		case int:
			out[k] = strconv.Itoa(t)
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}

