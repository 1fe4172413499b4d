package curve3

type options struct {
	logger        *Logger
	diagnostics   func(*RecordError)
	maxLineLength int
}

// Option configures [Parse] and [ParseReader].
type Option func(*options)

// WithLogger configures the logger used to report skipped records and parse
// outcomes.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithDiagnostics registers a function that is called for every record
// skipped under [SkipPolicy], in file order.
func WithDiagnostics(fn func(*RecordError)) Option {
	return func(o *options) {
		o.diagnostics = fn
	}
}

// WithMaxLineLength limits the length of a single input line, in bytes.
// Longer records are rejected with [ErrLineTooLong].
//
// If n <= 0, [DefaultMaxLineLength] is used.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxLineLength
		}
		o.maxLineLength = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:        NewLogger(nil),
		maxLineLength: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
