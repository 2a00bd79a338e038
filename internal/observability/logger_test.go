package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/cinematch/internal/observability"
)

func TestFromContext(t *testing.T) {
	t.Run("should decorate logger with context identifiers", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		restore := observability.ReplaceLogger(zap.New(core))
		defer restore()

		ctx := observability.WithTraceID(context.Background(), "trace-1")
		ctx = observability.WithRequestID(ctx, "req-1")
		ctx = observability.WithOperation(ctx, "recommend")

		observability.FromContext(ctx).Info("hello")

		entries := logs.All()
		require.Len(t, entries, 1)

		fields := entries[0].ContextMap()
		require.Equal(t, "trace-1", fields["trace_id"])
		require.Equal(t, "req-1", fields["request_id"])
		require.Equal(t, "recommend", fields["operation"])
		require.NotContains(t, fields, "span_id")
	})

	t.Run("should fall back to a logger when none is initialized", func(t *testing.T) {
		restore := observability.ReplaceLogger(nil)
		defer restore()

		require.NotNil(t, observability.FromContext(context.Background()))
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("should reject unknown level", func(t *testing.T) {
		logger, err := observability.InitLogger("chatty")

		require.Error(t, err)
		require.Nil(t, logger)
	})

	t.Run("should honor configured level", func(t *testing.T) {
		restore := observability.ReplaceLogger(nil)
		defer restore()

		logger, err := observability.InitLogger("warn")

		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestGenerateIDs(t *testing.T) {
	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
	require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
}
