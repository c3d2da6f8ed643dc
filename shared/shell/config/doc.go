// Package config provides the environment-driven configuration of the roster self-test binary:
// parsing ROSTER_* variables, building the slog logger and wiring OpenTelemetry providers to
// the roster observability adapters.
//
// This package is part of the shell (infrastructure) layer. Library packages never read the
// environment themselves; they are configured through functional options.
package config
