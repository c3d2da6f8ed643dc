// Package observable decorates roster query handlers with metrics, tracing and logging.
//
// The wrapper is generic over the query and result types, so every feature slice keeps its
// handler free of instrumentation and gets the same metric names, log messages and span
// layout through NewQueryWrapper.
package observable
