package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel/trace"

	"cahaya-digital/internal/handler/http/requestid"
)

// Options controls logger construction.
type Options struct {
	Level     slog.Level
	Format    string // "json" or "text"
	AddSource bool
	Output    io.Writer
}

// envOptions is the environment form of Options, parsed before the
// application config so that config errors can be logged.
type envOptions struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"json"`
	AddSource bool   `env:"LOG_ADD_SOURCE"`
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_ADD_SOURCE. A malformed
// LOG_ADD_SOURCE is ignored.
func OptionsFromEnv() Options {
	raw, err := env.ParseAs[envOptions]()
	if err != nil {
		raw = envOptions{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
		}
	}
	return Options{
		Level:     ParseLevel(raw.Level),
		Format:    strings.ToLower(strings.TrimSpace(raw.Format)),
		AddSource: raw.AddSource,
		Output:    os.Stdout,
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a logger configured from the environment.
func NewLogger() *slog.Logger {
	return New(OptionsFromEnv())
}

// New creates a logger from explicit options. Debug loggers always record
// source locations.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	hopts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.AddSource || opts.Level <= slog.LevelDebug,
	}
	if opts.Format == "text" {
		return slog.New(slog.NewTextHandler(out, hopts))
	}
	return slog.New(slog.NewJSONHandler(out, hopts))
}

// WithRequestID returns a logger that includes the request ID and, when a
// span is active, the trace ID from the context.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if reqID := requestid.FromContext(ctx); reqID != "" {
		logger = logger.With(slog.String("request_id", reqID))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		logger = logger.With(slog.String("trace_id", sc.TraceID().String()))
	}
	return logger
}

// FromContext retrieves the logger stored by WithLogger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
