// Package logger provides structured logging on top of zap. Loggers travel in
// the request context so that fields attached by the HTTP middleware (request
// ID, method, path) show up in every line the services emit.
package logger

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects zap's development config: console encoder,
	// stack traces on warnings, debug level by default.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects zap's production config: JSON encoder,
	// sampling, info level by default.
	ProductionEnvironment = "production"
)

// defaultLogger is the package-level logger instance used when no logger is found in context.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the default logger for the given environment. A non-empty
// level ("debug", "info", "warn", "error") overrides the environment default.
func Setup(environment, level string) error {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return fmt.Errorf("could not parse log level: %w", err)
		}
		cfg.Level = lvl
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defaultLogger = l

	return nil
}

// key is a custom type used as a context key for storing and retrieving logger instances.
type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context with a logger that includes the specified fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}

// StdLog returns a *log.Logger writing to the context logger at error level,
// for APIs such as http.Server.ErrorLog.
func StdLog(ctx context.Context) *log.Logger {
	l, err := zap.NewStdLogAt(Get(ctx), zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(Get(ctx))
	}

	return l
}

// GooseLogger adapts the context logger to goose's Printf/Fatalf logger.
type GooseLogger struct {
	l *zap.SugaredLogger
}

// Goose returns a goose-compatible logger backed by the context logger.
func Goose(ctx context.Context) *GooseLogger {
	return &GooseLogger{l: Get(ctx).Named("goose").Sugar()}
}

// Printf logs goose progress at info level.
func (g *GooseLogger) Printf(format string, v ...any) {
	g.l.Infof(format, v...)
}

// Fatalf logs at fatal level, which exits the process.
func (g *GooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatalf(format, v...)
}
