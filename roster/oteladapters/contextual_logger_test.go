package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.opentelemetry.io/otel/log/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/rosterkit/cohortdata/roster/oteladapters"
)

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "scan started", "location", "cohort_data.txt")
	logger.InfoContext(ctx, "rostersource operation: scan completed", "record_count", 25)
	logger.WarnContext(ctx, "failed to close roster file")
	logger.ErrorContext(ctx, "scan failed", "error_type", "malformed_record")

	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"location":"cohort_data.txt"`)
	assert.Contains(t, output, `"record_count":25`)
	assert.Contains(t, output, `"error_type":"malformed_record"`)
}

func Test_SlogBridgeLogger_GlobalProviderDoesNotPanic(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("rosterkit")
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug message", "key", "value")
		logger.InfoContext(ctx, "info message", "key", "value")
		logger.WarnContext(ctx, "warn message", "key", "value")
		logger.ErrorContext(ctx, "error message", "key", "value")
	})
}

func Test_OTelLogger_EmitsTypedAttributes(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	logger.InfoContext(context.Background(), "rostersource operation: scan completed",
		"record_count", 25,
		"duration_ms", 1.5,
		"location", "cohort_data.txt",
		"found", true,
		slog.String("query_type", "ListHouses"),
	)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, "rostersource operation: scan completed", record.Body().AsString())
	assert.Equal(t, log.SeverityInfo, record.Severity())

	attrs := make(map[string]log.Value)
	record.WalkAttributes(func(kv log.KeyValue) bool {
		attrs[kv.Key] = kv.Value
		return true
	})

	assert.Equal(t, int64(25), attrs["record_count"].AsInt64())
	assert.InDelta(t, 1.5, attrs["duration_ms"].AsFloat64(), 0.0001)
	assert.Equal(t, "cohort_data.txt", attrs["location"].AsString())
	assert.True(t, attrs["found"].AsBool())
	assert.Equal(t, "ListHouses", attrs["query_type"].AsString())
}

func Test_OTelLogger_SeverityPerLevel(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)
	ctx := context.Background()

	logger.DebugContext(ctx, "d")
	logger.InfoContext(ctx, "i")
	logger.WarnContext(ctx, "w")
	logger.ErrorContext(ctx, "e")

	require.Len(t, recorder.records, 4)
	assert.Equal(t, log.SeverityDebug, recorder.records[0].Severity())
	assert.Equal(t, log.SeverityInfo, recorder.records[1].Severity())
	assert.Equal(t, log.SeverityWarn, recorder.records[2].Severity())
	assert.Equal(t, log.SeverityError, recorder.records[3].Severity())
}

func Test_OTelLogger_DanglingKeyIsDropped(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	logger.InfoContext(context.Background(), "message", "key1", "value1", "key2")

	require.Len(t, recorder.records, 1)
	assert.Equal(t, 1, recorder.records[0].AttributesLen())
}

func Test_OTelLogger_NoopProvider(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "message", "number", 123)
	})
}

type recordingLogger struct {
	embedded.Logger

	records []log.Record
	lastCtx context.Context
}

func (l *recordingLogger) Emit(ctx context.Context, record log.Record) {
	l.lastCtx = ctx
	l.records = append(l.records, record)
}

func (l *recordingLogger) Enabled(context.Context, log.EnabledParameters) bool {
	return true
}

func Test_SlogBridgeLogger_WithProvider_AddsTraceContext(t *testing.T) {
	provider := &recordingLoggerProvider{logger: &recordingLogger{}}
	logger := oteladapters.NewSlogBridgeLoggerWithProvider("rosterkit", provider)

	tracerProvider := sdktrace.NewTracerProvider()
	defer func() { _ = tracerProvider.Shutdown(context.Background()) }()
	ctx, span := tracerProvider.Tracer("test").Start(context.Background(), "queryhandler.handle")
	defer span.End()

	logger.InfoContext(ctx, "query handler completed", "query_type", "ListHouses")

	require.Len(t, provider.logger.records, 1)
	record := provider.logger.records[0]
	assert.Equal(t, "query handler completed", record.Body().AsString())
	assert.Equal(t, log.SeverityInfo, record.Severity())
	assert.Equal(t, "rosterkit", provider.requestedName)
	assert.Equal(t, span.SpanContext().TraceID(), oteltrace.SpanContextFromContext(provider.logger.lastCtx).TraceID())
}

type recordingLoggerProvider struct {
	embedded.LoggerProvider

	logger        *recordingLogger
	requestedName string
}

func (p *recordingLoggerProvider) Logger(name string, _ ...log.LoggerOption) log.Logger {
	p.requestedName = name
	return p.logger
}
