// Command rosterselftest runs the roster library self-test and prints a JSON report.
//
// The example scenarios always run. When ROSTER_DATA_FILE names a roster file, the query invariants are
// checked against it as well. The process exits with status 1 when any check fails.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rosterkit/cohortdata/internal/selftest"
	"github.com/rosterkit/cohortdata/roster/fileengine"
	"github.com/rosterkit/cohortdata/rosterlib"
	"github.com/rosterkit/cohortdata/shared/shell/config"
)

func main() {
	passed, err := run()
	if err != nil {
		log.Fatalf("self-test failed: %v", err)
	}

	if !passed {
		os.Exit(1)
	}
}

func run() (bool, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return false, err
	}

	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		return false, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runnerOptions, shutdown, err := buildRunnerOptions(ctx, cfg, logger)
	if err != nil {
		return false, fmt.Errorf("failed to set up observability: %w", err)
	}
	defer shutdown()

	report := selftest.NewRunner(logger, runnerOptions...).Run(ctx, cfg.DataFile)

	if err = selftest.WriteReport(os.Stdout, report); err != nil {
		return false, fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Println(report.Summary)

	return report.Passed, nil
}

// buildRunnerOptions wires OpenTelemetry collectors into the library and the file source when
// observability is enabled. Otherwise both log through logger.
func buildRunnerOptions(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
) ([]selftest.RunnerOption, func(), error) {
	if !cfg.ObservabilityEnabled {
		return []selftest.RunnerOption{
			selftest.WithLibraryOptions(rosterlib.WithLogger(logger)),
			selftest.WithSourceOptions(fileengine.WithLogger(logger)),
		}, func() {}, nil
	}

	obs, err := config.NewObservability(ctx, cfg, config.WithFallbackLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	shutdown := func() {
		if shutdownErr := obs.Shutdown(); shutdownErr != nil {
			logger.Warn("observability shutdown failed", "error", shutdownErr.Error())
		}
	}

	return []selftest.RunnerOption{
		selftest.WithLibraryOptions(
			rosterlib.WithContextualLogger(obs.ContextualLogger),
			rosterlib.WithMetrics(obs.MetricsCollector),
			rosterlib.WithTracing(obs.TracingCollector),
		),
		selftest.WithSourceOptions(
			fileengine.WithContextualLogger(obs.ContextualLogger),
			fileengine.WithMetrics(obs.MetricsCollector),
			fileengine.WithTracing(obs.TracingCollector),
		),
	}, shutdown, nil
}
