package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/progress"
)

// SuiteResult encapsulates the outcome of a single suite run.
// It serves as the shared domain type between orchestration and presentation layers.
type SuiteResult struct {
	// Name is the suite name, e.g. "mul_fuzz".
	Name string
	// Kind tells fuzz and timing suites apart.
	Kind harness.Kind
	// Report is the suite's summary. It is populated even when Err is set.
	Report harness.Report
	// Duration is the wall time of the run, including operand generation.
	Duration time.Duration
	// Err is the apperrors.SuiteError that stopped the suite, if any.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Quiet   bool
}

// ProgressReporter defines the interface for displaying suite progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars, dashboards) while the orchestration layer focuses on
// coordinating the suites.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done. It runs in its own goroutine.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from suites.
	//   - numSuites: The number of concurrent suites being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer) {
	f(wg, progressChan, numSuites, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting suite results.
type ResultPresenter interface {
	// PresentSummaryTable displays one row per suite.
	PresentSummaryTable(results []SuiteResult, out io.Writer)

	// PresentFailures lists the mismatches of failed suites. Verbose output
	// includes every recorded mismatch instead of the first per suite.
	PresentFailures(results []SuiteResult, verbose bool, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles suite errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ResultObserver is notified as each suite finishes, before the run as a
// whole completes. The metrics exporter implements it.
type ResultObserver interface {
	ObserveResult(result SuiteResult)
}
