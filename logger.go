package apfind

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with apfind-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithInput adds the input name to the logger.
func (l *Logger) WithInput(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("input", name),
	}
}

// LogImprovement logs a new best progression.
func (l *Logger) LogImprovement(p Progression) {
	l.Debug("progression improved",
		"length", p.Length,
		"step", p.Step(),
		"end_index", p.EndIndex,
		"last", p.Last,
	)
}

// LogProgress logs periodic ingestion statistics.
func (l *Logger) LogProgress(s Stats) {
	l.Info("ingest progress",
		"values", s.Values,
		"scanned", s.Scanned,
		"extensions", s.Extensions,
		"index_depth", s.IndexDepth,
		"memory_bytes", s.MemoryBytes,
		"best", s.Best,
	)
}

// LogFinish logs the end of a run.
func (l *Logger) LogFinish(ctx context.Context, p Progression, s Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"values", s.Values,
			"best", p.Length,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"values", s.Values,
			"scanned", s.Scanned,
			"extensions", s.Extensions,
			"index_nodes", s.IndexNodes,
			"peak_memory_bytes", s.PeakMemoryBytes,
			"best", p.Length,
		)
	}
}
