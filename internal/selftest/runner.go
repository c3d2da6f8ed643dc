package selftest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rosterkit/cohortdata/roster"
	"github.com/rosterkit/cohortdata/roster/fileengine"
	"github.com/rosterkit/cohortdata/rosterlib"
)

const (
	kindScenario  = "scenario"
	kindInvariant = "invariant"
	kindSetup     = "setup"

	logMsgRunStarted   = "self-test run started"
	logMsgCheckPassed  = "self-test check passed"
	logMsgCheckFailed  = "self-test check failed"
	logMsgRunCompleted = "self-test run completed"

	logAttrRunID    = "run_id"
	logAttrCheck    = "check"
	logAttrKind     = "kind"
	logAttrError    = "error"
	logAttrFailed   = "failed"
	logAttrDataFile = "data_file"
)

// Runner executes the self-test checks.
type Runner struct {
	logger        roster.Logger
	libOptions    []rosterlib.Option
	sourceOptions []fileengine.Option
	newRunID      func() string
	now           func() time.Time
}

// RunnerOption defines a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithLibraryOptions passes options to every Library the runner builds.
func WithLibraryOptions(options ...rosterlib.Option) RunnerOption {
	return func(r *Runner) {
		r.libOptions = append(r.libOptions, options...)
	}
}

// WithSourceOptions passes options to the file source built for the data file.
func WithSourceOptions(options ...fileengine.Option) RunnerOption {
	return func(r *Runner) {
		r.sourceOptions = append(r.sourceOptions, options...)
	}
}

// WithRunIDGenerator replaces the random run id.
func WithRunIDGenerator(generate func() string) RunnerOption {
	return func(r *Runner) {
		r.newRunID = generate
	}
}

// NewRunner creates a Runner logging to logger, which may be nil.
func NewRunner(logger roster.Logger, opts ...RunnerOption) *Runner {
	runner := &Runner{
		logger:   logger,
		newRunID: func() string { return uuid.New().String() },
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run executes the example scenarios and, when dataFile is not empty, the invariants against that file.
func (r *Runner) Run(ctx context.Context, dataFile string) Report {
	report := Report{
		RunID:     r.newRunID(),
		StartedAt: r.now().UTC(),
		DataFile:  dataFile,
		Checks:    make([]CheckResult, 0),
	}
	r.logInfo(logMsgRunStarted, logAttrRunID, report.RunID, logAttrDataFile, dataFile)

	for _, sc := range exampleScenarios() {
		lib, err := openFixture(sc.fixture, r.libOptions...)
		if err != nil {
			r.record(&report, kindSetup, sc.name, 0, err)
			continue
		}

		r.runCheck(ctx, &report, kindScenario, sc.check, lib)
	}

	if dataFile != "" {
		r.runInvariants(ctx, &report, dataFile)
	}

	report.finish()
	r.logInfo(logMsgRunCompleted, logAttrRunID, report.RunID, logAttrFailed, report.Failed)

	return report
}

func (r *Runner) runInvariants(ctx context.Context, report *Report, dataFile string) {
	source, err := fileengine.NewSourceFromPath(dataFile, r.sourceOptions...)
	if err != nil {
		r.record(report, kindSetup, "open data file", 0, err)
		return
	}

	records, err := source.Scan(ctx)
	if err != nil {
		r.record(report, kindSetup, "read data file", 0, err)
		return
	}

	lineCount, err := countLines(dataFile)
	if err != nil {
		r.record(report, kindSetup, "count data file lines", 0, err)
		return
	}

	lib, err := rosterlib.New(source, r.libOptions...)
	if err != nil {
		r.record(report, kindSetup, "open data file", 0, err)
		return
	}

	for _, c := range invariantChecks(records, lineCount) {
		r.runCheck(ctx, report, kindInvariant, c, lib)
	}
}

func (r *Runner) runCheck(ctx context.Context, report *Report, kind string, c check, lib *rosterlib.Library) {
	start := time.Now()
	err := c.run(ctx, lib)
	r.record(report, kind, c.name, time.Since(start), err)
}

func (r *Runner) record(report *Report, kind, name string, duration time.Duration, err error) {
	result := CheckResult{
		Name:       name,
		Kind:       kind,
		Passed:     err == nil,
		DurationMS: float64(duration.Nanoseconds()) / 1e6,
	}

	if err != nil {
		result.Detail = err.Error()
		r.logError(logMsgCheckFailed, logAttrRunID, report.RunID, logAttrKind, kind, logAttrCheck, name, logAttrError, err.Error())
	} else {
		r.logDebug(logMsgCheckPassed, logAttrRunID, report.RunID, logAttrKind, kind, logAttrCheck, name)
	}

	report.add(result)
}

func (r *Runner) logDebug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *Runner) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Runner) logError(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Error(msg, args...)
	}
}
