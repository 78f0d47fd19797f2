package linalg

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with linalg-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogEncode logs an encode operation.
// Callers attach the dimension with WithDimension.
func (l *Logger) LogEncode(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"bytes", size,
		)
	}
}

// LogDecode logs a decode operation. The dimension is only known, and only
// logged, on success.
func (l *Logger) LogDecode(ctx context.Context, size, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"bytes", size,
			"dimension", dimension,
		)
	}
}
