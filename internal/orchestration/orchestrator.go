package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropped updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 5

// TracerName names the tracer that emits one span per suite.
const TracerName = "vec32check"

// RunOptions configures ExecuteSuites.
type RunOptions struct {
	harness.Options
	// Workers bounds how many suites run at once. Zero or less means no bound.
	Workers int
	// Observer, if set, is called as each suite finishes.
	Observer ResultObserver
}

// ExecuteSuites orchestrates the concurrent execution of harness suites.
//
// It manages the lifecycle of suite goroutines, collects their results, and
// coordinates the display of progress updates. A failing suite does not
// cancel the others; every suite runs to completion or until ctx ends.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - suites: The suites to execute.
//   - opts: Trial sizing, worker bound and optional observer.
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []SuiteResult: One result per suite, in the order given.
func ExecuteSuites(ctx context.Context, suites []harness.Suite, opts RunOptions, progressReporter ProgressReporter, out io.Writer) []SuiteResult {
	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	results := make([]SuiteResult, len(suites))
	progressChan := make(chan progress.ProgressUpdate, len(suites)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(suites), out)

	tracer := otel.Tracer(TracerName)
	for i, s := range suites {
		g.Go(func() error {
			results[i] = runSuite(ctx, tracer, s, opts.Options, progress.ChannelReporter(progressChan, i))
			if opts.Observer != nil {
				opts.Observer.ObserveResult(results[i])
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runSuite(ctx context.Context, tracer trace.Tracer, s harness.Suite, opts harness.Options, reporter progress.Reporter) SuiteResult {
	ctx, span := tracer.Start(ctx, "suite "+s.Name(), trace.WithAttributes(
		attribute.String("vec32check.suite", s.Name()),
		attribute.String("vec32check.kind", s.Kind().String()),
		attribute.Int("vec32check.max_words", opts.MaxWords),
		attribute.Int64("vec32check.seed", int64(opts.Seed)),
	))
	defer span.End()

	start := time.Now()
	rep, err := s.Run(ctx, opts, reporter)
	res := SuiteResult{Name: s.Name(), Kind: s.Kind(), Report: rep, Duration: time.Since(start), Err: err}

	span.SetAttributes(
		attribute.Int("vec32check.trials", rep.Trials),
		attribute.Int("vec32check.ops", rep.Ops),
		attribute.Int("vec32check.failures", len(rep.Failures)),
		attribute.String("vec32check.digest", rep.DigestString()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res
}

// Summary counts the outcomes of a run.
type Summary struct {
	Passed   int
	Failed   int
	Canceled int
	Trials   int
	Ops      int
}

// Summarize tallies results.
func Summarize(results []SuiteResult) Summary {
	var s Summary
	for _, r := range results {
		s.Trials += r.Report.Trials
		s.Ops += r.Report.Ops
		switch {
		case r.Err == nil:
			s.Passed++
		case apperrors.IsContextError(r.Err):
			s.Canceled++
		default:
			s.Failed++
		}
	}
	return s
}

// AnalyzeResults processes the results of a run and generates a summary
// report.
//
// It sorts the results (failures first, then by duration), displays the
// summary table and any mismatches, and maps the worst outcome to an exit
// code: a mismatch outranks a timeout or cancellation, which outranks
// success.
//
// Parameters:
//   - results: The slice of suite results to analyze.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - handler: The error handler that prints the status line.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []SuiteResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err != nil
		}
		return results[i].Duration < results[j].Duration
	})

	var (
		worst     error
		worstCode = apperrors.ExitSuccess
		total     time.Duration
	)
	for _, r := range results {
		total = max(total, r.Duration)
		if r.Err == nil {
			continue
		}
		code := apperrors.ExitCodeFor(r.Err)
		if worst == nil || severity(code) > severity(worstCode) {
			worst, worstCode = r.Err, code
		}
	}

	if !opts.Quiet {
		presenter.PresentSummaryTable(results, out)
		presenter.PresentFailures(results, opts.Verbose, out)
	}

	sum := Summarize(results)
	if worst == nil {
		if !opts.Quiet {
			fmt.Fprintf(out, "\nGlobal Status: Success. %d suites passed, %d trials, %d checked results.\n",
				sum.Passed, sum.Trials, sum.Ops)
		}
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nGlobal Status: %d passed, %d failed, %d interrupted.\n", sum.Passed, sum.Failed, sum.Canceled)
	return handler.HandleError(worst, total, out)
}

// severity orders exit codes for AnalyzeResults.
func severity(code int) int {
	switch code {
	case apperrors.ExitErrorMismatch:
		return 4
	case apperrors.ExitErrorGeneric:
		return 3
	case apperrors.ExitErrorTimeout:
		return 2
	case apperrors.ExitErrorCanceled:
		return 1
	default:
		return 0
	}
}
