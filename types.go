package typefix

import "log/slog"

// DefaultMaxDepth bounds both parse nesting and validation recursion when no
// explicit ceiling is configured.
const DefaultMaxDepth = 512

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement while reading JSON text.
type Strictness struct {
	OnDuplicateKey Severity // Ignore (last value wins), Warn or Error.
}

// ParseOpt bundles options for turning JSON text into a value tree.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 means unlimited
	MaxBytes   int64 // 0 means unlimited
	// OnIssue receives non-fatal issues such as duplicate keys in Warn mode.
	OnIssue func(Issue)
}

// Options configures a Validator and the document entry points.
type Options struct {
	// MaxDepth is the recursion ceiling for validation; <= 0 selects
	// DefaultMaxDepth.
	MaxDepth int
	// Parse is applied to document and schema text.
	Parse ParseOpt
	// Logger receives debug records from the document entry points. The engine
	// itself never logs.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth sets the validation recursion ceiling.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithParseOpt sets the text parsing options.
func WithParseOpt(p ParseOpt) Option { return func(o *Options) { o.Parse = p } }

// WithLogger sets the logger used by ValidateDocument and friends.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

func buildOptions(opts []Option) Options {
	o := Options{Parse: ParseOpt{MaxDepth: DefaultMaxDepth}}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
