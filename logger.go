package probemap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with probemap-specific helpers.
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
func (l *Logger) LogInsert(key string, overwrote bool) {
	l.Debug("insert completed",
		"key", key,
		"overwrote", overwrote,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(key string, found bool) {
	l.Debug("search completed",
		"key", key,
		"found", found,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(key string, deleted bool) {
	l.Debug("delete completed",
		"key", key,
		"deleted", deleted,
	)
}

// LogResize logs a table rebuild.
func (l *Logger) LogResize(oldSize, newSize, count int) {
	l.Info("table resized",
		"old_size", oldSize,
		"new_size", newSize,
		"count", count,
	)
}
