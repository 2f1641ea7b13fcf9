package gendex

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gendex-specific context.
// This provides structured logging with consistent field names.
//
// The containers themselves never log; logging belongs to the snapshot
// layer and tooling built on top of it.
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

// WithFile adds a file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", path),
	}
}

// WithSection adds a section field to the logger.
func (l *Logger) WithSection(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("section", name),
	}
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSave logs a snapshot save operation.
func (l *Logger) LogSave(ctx context.Context, sections int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"sections", sections,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"sections", sections,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a snapshot load operation.
func (l *Logger) LogLoad(ctx context.Context, sections int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"sections", sections,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"sections", sections,
			"bytes", bytes,
		)
	}
}

// LogVerify logs a snapshot verification.
func (l *Logger) LogVerify(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot verify failed",
			"file", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot verified",
			"file", filename,
		)
	}
}
