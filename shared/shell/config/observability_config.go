package config

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/roster/oteladapters"
)

const shutdownTimeout = 5 * time.Second

// Observability holds the OpenTelemetry providers and the roster adapters built on them.
type Observability struct {
	TracerProvider   *trace.TracerProvider
	MeterProvider    *metric.MeterProvider
	Resource         *resource.Resource
	MetricsCollector roster.ContextualMetricsCollector
	TracingCollector roster.TracingCollector
	ContextualLogger roster.ContextualLogger
}

// ObservabilityOption configures NewObservability.
type ObservabilityOption func(*observabilitySettings)

type observabilitySettings struct {
	spanExporter   trace.SpanExporter
	metricReader   metric.Reader
	loggerProvider otellog.LoggerProvider
	fallbackLogger *slog.Logger
}

// WithSpanExporter sends finished spans synchronously to exporter.
func WithSpanExporter(exporter trace.SpanExporter) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.spanExporter = exporter
	}
}

// WithMetricReader registers reader with the meter provider.
func WithMetricReader(reader metric.Reader) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.metricReader = reader
	}
}

// WithLoggerProvider routes the contextual logger through the OpenTelemetry slog bridge.
func WithLoggerProvider(provider otellog.LoggerProvider) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.loggerProvider = provider
	}
}

// WithFallbackLogger sets the logger used when no LoggerProvider is configured.
func WithFallbackLogger(logger *slog.Logger) ObservabilityOption {
	return func(s *observabilitySettings) {
		s.fallbackLogger = logger
	}
}

// NewObservability creates OpenTelemetry providers for cfg.ServiceName, installs them as the
// global providers and returns the roster adapters bound to them.
func NewObservability(ctx context.Context, cfg Config, opts ...ObservabilityOption) (*Observability, error) {
	settings := observabilitySettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tracerOptions := []trace.TracerProviderOption{trace.WithResource(res)}
	if settings.spanExporter != nil {
		tracerOptions = append(tracerOptions, trace.WithSyncer(settings.spanExporter))
	}
	tracerProvider := trace.NewTracerProvider(tracerOptions...)

	meterOptions := []metric.Option{metric.WithResource(res)}
	if settings.metricReader != nil {
		meterOptions = append(meterOptions, metric.WithReader(settings.metricReader))
	}
	meterProvider := metric.NewMeterProvider(meterOptions...)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var contextualLogger roster.ContextualLogger
	switch {
	case settings.loggerProvider != nil:
		contextualLogger = oteladapters.NewSlogBridgeLoggerWithProvider(cfg.ServiceName, settings.loggerProvider)
	case settings.fallbackLogger != nil:
		contextualLogger = oteladapters.NewSlogBridgeLoggerWithHandler(settings.fallbackLogger.Handler())
	default:
		contextualLogger = oteladapters.NewSlogBridgeLogger(cfg.ServiceName)
	}

	return &Observability{
		TracerProvider:   tracerProvider,
		MeterProvider:    meterProvider,
		Resource:         res,
		MetricsCollector: oteladapters.NewMetricsCollector(meterProvider.Meter(cfg.ServiceName)),
		TracingCollector: oteladapters.NewTracingCollector(tracerProvider.Tracer(cfg.ServiceName)),
		ContextualLogger: contextualLogger,
	}, nil
}

// Shutdown flushes and stops both providers.
func (o *Observability) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		o.TracerProvider.Shutdown(ctx),
		o.MeterProvider.Shutdown(ctx),
	)
}
