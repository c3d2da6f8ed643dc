// Package helper provides testing utilities for roster sources and query handlers.
//
// It contains roster file fixtures, a capturing slog.Handler, and spies for the metrics and
// tracing collector interfaces, shared by the tests of the source engine, the query features
// and the self-test runner.
package helper
