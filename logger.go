package curve3

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with parser-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSource adds the input name to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogRecordRejected logs a record skipped under SkipPolicy.
func (l *Logger) LogRecordRejected(err *RecordError) {
	l.Warn("skipping record",
		"line", err.Line,
		"reason", err.Err,
	)
}

// LogTruncated logs an input that ended before the declared number of
// records.
func (l *Logger) LogTruncated(declared, read int) {
	l.Warn("input ended before all declared records",
		"declared", declared,
		"read", read,
	)
}

// LogParsed logs the outcome of a parse. Failures are logged at debug level
// only, since the error is returned to the caller.
func (l *Logger) LogParsed(declared, accepted, rejected int, err error) {
	if err != nil {
		l.Debug("parse failed",
			"declared", declared,
			"accepted", accepted,
			"error", err,
		)
	} else {
		l.Debug("parse completed",
			"declared", declared,
			"accepted", accepted,
			"rejected", rejected,
		)
	}
}
