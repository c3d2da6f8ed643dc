package fileengine

import (
	"github.com/rosterkit/cohortdata/roster"
)

// Logger interface for scan logging, operational metrics, warnings, and error reporting.
type Logger = roster.Logger

// ContextualLogger interface for context-aware logging with automatic trace correlation.
type ContextualLogger = roster.ContextualLogger

// MetricsCollector interface for collecting Source performance and operational metrics.
type MetricsCollector = roster.MetricsCollector

// TracingCollector interface for collecting tracing information from Source scans.
type TracingCollector = roster.TracingCollector

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext = roster.SpanContext

// Option defines a functional option for configuring Source.
type Option func(*Source) error

// WithLogger sets the logger for the Source.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: Per-scan timing including the file location (development use)
// Info level: Record counts and durations (production-safe)
// Warn level: Non-critical issues like close failures
// Error level: Failures that abort a scan (unavailable source, malformed record).
func WithLogger(logger Logger) Option {
	return func(s *Source) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Source.
// When both loggers are configured, the contextual logger wins.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Source) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Source.
// The collector will receive scan durations, scanned record counts and error counts.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Source) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Source.
// Each Scan opens one span named "rostersource.scan".
func WithTracing(collector TracingCollector) Option {
	return func(s *Source) error {
		s.tracingCollector = collector
		return nil
	}
}
