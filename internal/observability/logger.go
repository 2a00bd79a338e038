package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	maxLoggerFieldCapacity int = 4 // Maximum number of context fields to add to logger
)

// Global logger instance - shared across the application.
// Loggers are not stored in context; only the identifiers they decorate with are.
//
//nolint:gochecknoglobals // Singleton logger is a standard pattern
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// InitLogger initializes the base logger (called once at startup).
// An empty level means info.
func InitLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()

	return logger, nil
}

// ReplaceLogger swaps the global logger and returns a func restoring the previous one.
// Tests use it to capture log output.
func ReplaceLogger(logger *zap.Logger) func() {
	loggerMu.Lock()
	previous := globalLogger
	globalLogger = logger
	loggerMu.Unlock()

	return func() {
		loggerMu.Lock()
		globalLogger = previous
		loggerMu.Unlock()
	}
}

// getBaseLogger returns the global logger instance.
func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger == nil {
		// Fallback to production logger if not initialized
		logger, _ = zap.NewProduction()
	}

	return logger
}

// FromContext creates a logger with fields extracted from context.
func FromContext(ctx context.Context) *zap.Logger {
	logger := getBaseLogger()

	fields := make([]zap.Field, 0, maxLoggerFieldCapacity)

	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}

	if spanID := GetSpanID(ctx); spanID != "" {
		fields = append(fields, zap.String("span_id", spanID))
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if operation := GetOperation(ctx); operation != "" {
		fields = append(fields, zap.String("operation", operation))
	}

	return logger.With(fields...)
}
