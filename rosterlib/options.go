package rosterlib

import (
	"fmt"

	"github.com/rosterkit/cohortdata/features/query/housemates"
	"github.com/rosterkit/cohortdata/roster"
)

// Option defines a functional option for configuring a Library.
type Option func(*settings) error

type settings struct {
	logger           roster.Logger
	contextualLogger roster.ContextualLogger
	metricsCollector roster.MetricsCollector
	tracingCollector roster.TracingCollector
	nameResolution   housemates.NameResolution
}

func (s settings) instrumented() bool {
	return s.logger != nil || s.contextualLogger != nil || s.metricsCollector != nil || s.tracingCollector != nil
}

// WithLogger sets the logger for query handling. *slog.Logger satisfies roster.Logger.
func WithLogger(logger roster.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger. It wins over a logger set with WithLogger.
func WithContextualLogger(logger roster.ContextualLogger) Option {
	return func(s *settings) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector roster.MetricsCollector) Option {
	return func(s *settings) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector.
func WithTracing(collector roster.TracingCollector) Option {
	return func(s *settings) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithNameResolution sets how HousematesFor resolves a name carried by several records.
// The default is housemates.ResolveLastMatch.
func WithNameResolution(resolution housemates.NameResolution) Option {
	return func(s *settings) error {
		if !resolution.IsValid() {
			return fmt.Errorf("%w: %d", roster.ErrUnknownNameResolution, int(resolution))
		}

		s.nameResolution = resolution

		return nil
	}
}
