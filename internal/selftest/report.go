package selftest

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	// SummaryPassed is printed when every check of a run passed.
	SummaryPassed = "ALL TESTS PASSED"

	// SummaryFailed is printed when at least one check failed.
	SummaryFailed = "SOME TESTS FAILED"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Passed     bool    `json:"passed"`
	Detail     string  `json:"detail,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

// Report is the outcome of one self-test run.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	DataFile  string        `json:"data_file,omitempty"`
	Checks    []CheckResult `json:"checks"`
	Failed    int           `json:"failed"`
	Passed    bool          `json:"passed"`
	Summary   string        `json:"summary"`
}

func (r *Report) add(result CheckResult) {
	r.Checks = append(r.Checks, result)
	if !result.Passed {
		r.Failed++
	}
}

func (r *Report) finish() {
	r.Passed = r.Failed == 0
	r.Summary = SummaryPassed
	if !r.Passed {
		r.Summary = SummaryFailed
	}
}

// String renders a one-line summary, printed after the JSON report.
func (r Report) String() string {
	return fmt.Sprintf("%s (%d checks, %d failed, run %s)", r.Summary, len(r.Checks), r.Failed, r.RunID)
}

// WriteReport writes report as indented JSON followed by a newline.
func WriteReport(w io.Writer, report Report) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}
