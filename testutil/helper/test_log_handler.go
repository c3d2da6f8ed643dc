package helper

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// TestLogHandler is a slog.Handler implementation that captures log records for testing.
type TestLogHandler struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewTestLogHandler creates a new TestLogHandler
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewTestLogHandler(logToStdOut bool) *TestLogHandler {
	return &TestLogHandler{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdOut,
	}
}

// Handle implements slog.Handler interface.
func (h *TestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)

	if h.logToStdout {
		jsonHandler := slog.NewJSONHandler(os.Stdout, nil)
		_ = jsonHandler.Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (h *TestLogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler interface.
func (h *TestLogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler interface.
func (h *TestLogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// GetRecordCount returns the number of captured log records.
func (h *TestLogHandler) GetRecordCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.records)
}

// LogRecordMatcher provides a fluent interface for checking log record attributes.
// It holds every record with the level and message; each With* call narrows the candidates.
type LogRecordMatcher struct {
	candidates []slog.Record
}

// HasDebugLogWithMessage starts a fluent chain to check a debug-level log record.
func (h *TestLogHandler) HasDebugLogWithMessage(message string) *LogRecordMatcher {
	return h.hasLogWithMessage(slog.LevelDebug, message)
}

// HasInfoLogWithMessage starts a fluent chain to check an info-level log record.
func (h *TestLogHandler) HasInfoLogWithMessage(message string) *LogRecordMatcher {
	return h.hasLogWithMessage(slog.LevelInfo, message)
}

// HasWarnLogWithMessage starts a fluent chain to check a warn-level log record.
func (h *TestLogHandler) HasWarnLogWithMessage(message string) *LogRecordMatcher {
	return h.hasLogWithMessage(slog.LevelWarn, message)
}

// HasErrorLogWithMessage starts a fluent chain to check an error-level log record.
func (h *TestLogHandler) HasErrorLogWithMessage(message string) *LogRecordMatcher {
	return h.hasLogWithMessage(slog.LevelError, message)
}

func (h *TestLogHandler) hasLogWithMessage(level slog.Level, message string) *LogRecordMatcher {
	h.mu.Lock()
	defer h.mu.Unlock()

	matcher := &LogRecordMatcher{}
	for i := range h.records {
		if h.records[i].Level == level && h.records[i].Message == message {
			matcher.candidates = append(matcher.candidates, h.records[i])
		}
	}

	return matcher
}

func (m *LogRecordMatcher) withAttr(match func(attr slog.Attr) bool) *LogRecordMatcher {
	kept := m.candidates[:0:0]
	for _, record := range m.candidates {
		hasAttr := false
		record.Attrs(func(attr slog.Attr) bool {
			hasAttr = match(attr)
			return !hasAttr
		})

		if hasAttr {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// WithDurationMS checks if the log record has a duration_ms attribute with a non-negative value.
func (m *LogRecordMatcher) WithDurationMS() *LogRecordMatcher {
	return m.withAttr(func(attr slog.Attr) bool {
		if attr.Key != "duration_ms" {
			return false
		}

		switch attr.Value.Kind() {
		case slog.KindInt64:
			return attr.Value.Int64() >= 0
		case slog.KindFloat64:
			return attr.Value.Float64() >= 0
		default:
			return false
		}
	})
}

// WithInt checks if the log record has an integer attribute with the given value.
func (m *LogRecordMatcher) WithInt(key string, value int64) *LogRecordMatcher {
	return m.withAttr(func(attr slog.Attr) bool {
		return attr.Key == key && attr.Value.Kind() == slog.KindInt64 && attr.Value.Int64() == value
	})
}

// WithString checks if the log record has a string attribute with the given value.
func (m *LogRecordMatcher) WithString(key, value string) *LogRecordMatcher {
	return m.withAttr(func(attr slog.Attr) bool {
		return attr.Key == key && attr.Value.String() == value
	})
}

// WithKey checks if the log record has an attribute with the given key.
func (m *LogRecordMatcher) WithKey(key string) *LogRecordMatcher {
	return m.withAttr(func(attr slog.Attr) bool {
		return attr.Key == key
	})
}

// Assert returns true if at least one record met all conditions in the fluent chain.
func (m *LogRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
