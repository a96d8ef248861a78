// Package logger provides the structured logger used across services.
// Records go to stdout through log/slog and, when an OpenTelemetry logger
// provider is installed, to the OTLP pipeline through the otelslog bridge.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "skillswap"

// Logger is the logging contract services depend on.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
}

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value any
}

// AppLogger implements Logger on top of slog.
type AppLogger struct {
	log *slog.Logger
}

// NewLogger builds the application logger for the given environment.
// Production emits JSON at info level, everything else text at debug level.
func NewLogger(env string) *AppLogger {
	return newLogger(env, os.Stdout)
}

func newLogger(env string, w io.Writer) *AppLogger {
	var local slog.Handler
	if env == "production" {
		local = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		local = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	handler := fanout{local, otelslog.NewHandler(instrumentationName)}
	return &AppLogger{log: slog.New(handler)}
}

// NewNop returns a logger that discards everything.
func NewNop() *AppLogger {
	return &AppLogger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *AppLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.write(ctx, slog.LevelDebug, msg, fields)
}

func (l *AppLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.write(ctx, slog.LevelInfo, msg, fields)
}

func (l *AppLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.write(ctx, slog.LevelWarn, msg, fields)
}

func (l *AppLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.write(ctx, slog.LevelError, msg, fields)
}

func (l *AppLogger) write(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.log.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(fields)+1)
	if id := RequestID(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	l.log.LogAttrs(ctx, level, msg, attrs...)
}

type requestIDKey struct{}

// WithRequestID stores the request id so every record logged with ctx carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
