package hubgo

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hubgo-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithKey adds a storage key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// LogDecode logs a sample decode.
func (l *Logger) LogDecode(ctx context.Context, path, format string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"path", path,
			"format", format,
		)
	}
}

// LogBatchLoad logs a LoadAll batch.
func (l *Logger) LogBatchLoad(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch load completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch load completed",
			"count", count,
		)
	}
}

// LogMetaWrite logs a metadata record write.
func (l *Logger) LogMetaWrite(ctx context.Context, key string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "metadata write failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "metadata written",
			"key", key,
		)
	}
}

// LogMetaRead logs a metadata record read.
func (l *Logger) LogMetaRead(ctx context.Context, key string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "metadata read failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "metadata read",
			"key", key,
		)
	}
}

// LogOpenStorage logs a storage URL resolution.
func (l *Logger) LogOpenStorage(ctx context.Context, url string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open storage failed",
			"url", url,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "storage opened",
			"url", url,
		)
	}
}
