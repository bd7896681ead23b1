package topogo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with topogo-specific context.
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

// WithColumns adds a column count field to the logger.
func (l *Logger) WithColumns(n int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("columns", n),
	}
}

// WithReduction adds a reduction strategy field to the logger.
func (l *Logger) WithReduction(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("reduction", kind),
	}
}

// LogReduce logs a reduction run.
func (l *Logger) LogReduce(ctx context.Context, kind string, columns, pairsFound int64, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "reduction failed",
			"reduction", kind,
			"columns", columns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "reduction completed",
			"reduction", kind,
			"columns", columns,
			"pairs", pairsFound,
			"took", took,
		)
	}
}

// LogSave logs a blob save operation.
func (l *Logger) LogSave(ctx context.Context, name string, size int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "save completed",
			"name", name,
			"bytes", size,
		)
	}
}

// LogLoad logs a blob load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, size int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"name", name,
			"bytes", size,
		)
	}
}
