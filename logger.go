package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWidth adds a word width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithInput adds an input name field to the logger.
func (l *Logger) WithInput(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("input", name),
	}
}

func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogResize logs a size change of a vector.
func (l *Logger) LogResize(oldSize, newSize, words int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("resize completed",
		"old_size", oldSize,
		"new_size", newSize,
		"words", words,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(oldSize int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("clear completed",
		"old_size", oldSize,
	)
}

// LogParse logs a parse of a bit string.
func (l *Logger) LogParse(size int, err error) {
	if err != nil {
		l.Warn("parse failed",
			"error", err,
		)
		return
	}
	if !l.debugEnabled() {
		return
	}
	l.Debug("parse completed",
		"size", size,
	)
}
