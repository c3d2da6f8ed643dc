// Package oteladapters provides OpenTelemetry adapters for the roster observability interfaces.
//
// The adapters plug the record source and the query handlers into an OpenTelemetry setup
// without callers implementing roster.MetricsCollector, roster.TracingCollector or
// roster.ContextualLogger themselves:
//
//	meter := otel.Meter("rosterkit")
//	tracer := otel.Tracer("rosterkit")
//
//	source, err := fileengine.NewSourceFromPath(path,
//		fileengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		fileengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		fileengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("rosterkit")),
//	)
package oteladapters
