package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(tracing bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), tracing), logs
}

func TestLoggerClient_Fields(t *testing.T) {
	l, logs := newObserved(false)

	l.Error("remote failed", errors.New("boom"), map[string]interface{}{"collection": "docs"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "remote failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "docs", fields["collection"])
}

func TestLoggerClient_TraceFields(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	t.Run("enabled", func(t *testing.T) {
		l, logs := newObserved(true)
		l.InfoWithContext(ctx, "scan", nil)

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
		assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
	})

	t.Run("disabled", func(t *testing.T) {
		l, logs := newObserved(false)
		l.InfoWithContext(ctx, "scan", nil)

		_, ok := logs.All()[0].ContextMap()["trace_id"]
		assert.False(t, ok)
	})

	t.Run("no span", func(t *testing.T) {
		l, logs := newObserved(true)
		l.ErrorWithContext(context.Background(), "scan", nil)

		_, ok := logs.All()[0].ContextMap()["trace_id"]
		assert.False(t, ok)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel(Debug))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(Info))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(Warning))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(Error))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
