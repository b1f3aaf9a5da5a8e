package simgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with simgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(tokens int, duration time.Duration) {
	l.Debug("insert completed",
		"tokens", tokens,
		"duration", duration,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(queryTokens, results int, duration time.Duration) {
	l.Debug("search completed",
		"query_tokens", queryTokens,
		"results", results,
		"duration", duration,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(found bool, duration time.Duration) {
	l.Debug("delete completed",
		"found", found,
		"duration", duration,
	)
}

// LogSnapshotSave logs a snapshot save operation.
func (l *Logger) LogSnapshotSave(ctx context.Context, name string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"bytes", bytes,
		)
	}
}

// LogSnapshotLoad logs a snapshot load operation.
func (l *Logger) LogSnapshotLoad(ctx context.Context, name string, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"name", name,
			"entries", entries,
		)
	}
}
