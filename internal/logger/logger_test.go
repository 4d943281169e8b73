package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fdahk/Tjlogs/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useBuffer(t *testing.T, lvl slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: lvl,
	})
	logger.SetLogger(slog.New(handler))
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := useBuffer(t, slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	buf := useBuffer(t, slog.LevelError)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := useBuffer(t, slog.LevelInfo)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithArticleID(t *testing.T) {
	t.Run("without request id", func(t *testing.T) {
		buf := useBuffer(t, slog.LevelInfo)

		logger.WithArticleID(context.Background(), 456).Info("article viewed")

		output := buf.String()
		assert.Contains(t, output, "article viewed")
		assert.Contains(t, output, `"article_id":456`)
		assert.NotContains(t, output, "request_id")
	})

	t.Run("keeps the request id from context", func(t *testing.T) {
		buf := useBuffer(t, slog.LevelInfo)
		ctx := logger.ContextWithRequestID(context.Background(), "req-456")

		logger.WithArticleID(ctx, 457).Info("article updated")

		output := buf.String()
		assert.Contains(t, output, `"article_id":457`)
		assert.Contains(t, output, `"request_id":"req-456"`)
	})
}

func TestLogger_ContextCarriesRequestID(t *testing.T) {
	buf := useBuffer(t, slog.LevelInfo)

	ctx := logger.ContextWithRequestID(context.Background(), "req-789")
	assert.Equal(t, "req-789", logger.RequestIDFromContext(ctx))

	logger.ErrorContext(ctx, "store failed")

	output := buf.String()
	assert.Contains(t, output, "store failed")
	assert.Contains(t, output, `"request_id":"req-789"`)
}

func TestLogger_RequestIDFromEmptyContext(t *testing.T) {
	buf := useBuffer(t, slog.LevelInfo)

	assert.Empty(t, logger.RequestIDFromContext(context.Background()))
	logger.FromContext(context.Background()).Info("untagged")

	assert.Contains(t, buf.String(), "untagged")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestLogger_Warn(t *testing.T) {
	buf := useBuffer(t, slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("origin", "*"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "kept")
}

func TestLogger_Configure(t *testing.T) {
	t.Cleanup(func() { _ = logger.SetLevel("info") })

	t.Run("text format at debug", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, logger.Configure(&buf, "text", "debug"))

		logger.FromContext(context.Background()).Debug("debug line", slog.String("k", "v"))

		assert.Contains(t, buf.String(), "msg=\"debug line\"")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("level filters lower records", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, logger.Configure(&buf, "json", "warn"))

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, logger.Configure(&buf, "xml", "info"))
	})

	t.Run("unknown level", func(t *testing.T) {
		assert.Error(t, logger.SetLevel("loud"))
	})
}
