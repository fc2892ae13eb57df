package logger

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MaxRawOutput bounds how much of an upstream payload is written to a log entry
const MaxRawOutput = 4 << 10

// New builds the process logger for the given level (debug, info, warn, error)
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	logger := ctxzap.Extract(ctx)
	return ctxzap.ToContext(ctx, logger.With(fields...))
}

// WithAction adds "action" field to context logger to describe the flow
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}

// RawOutput logs s under key, cut to at most MaxRawOutput bytes on a rune boundary
func RawOutput(key, s string) zap.Field {
	if len(s) <= MaxRawOutput {
		return zap.String(key, s)
	}

	cut := MaxRawOutput
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return zap.String(key, s[:cut]+"...(truncated)")
}
