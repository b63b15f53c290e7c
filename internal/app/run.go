package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mjakub/bignum/internal/cli"
	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/logging"
	"github.com/mjakub/bignum/internal/metrics"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/ui"
)

// runObserver records each finished suite in the run metrics and the log.
// ExecuteSuites calls it from the suite goroutines.
type runObserver struct {
	metrics *metrics.RunMetrics
	memory  *metrics.MemoryCollector
	logger  *logging.ZerologAdapter
}

func (o runObserver) ObserveResult(r orchestration.SuiteResult) {
	o.metrics.ObserveSuite(r.Name, r.Report.Trials, r.Report.Ops, len(r.Report.Failures), r.Duration)
	o.memory.Snapshot()

	fields := []logging.Field{
		logging.String("suite", r.Name),
		logging.Int("trials", r.Report.Trials),
		logging.Int("ops", r.Report.Ops),
		logging.String("digest", r.Report.DigestString()),
	}
	if r.Err != nil {
		o.logger.Error("suite failed", r.Err, fields...)
		return
	}
	o.logger.Debug("suite passed", fields...)
}

// runSuites runs the selected suites with line-oriented output.
func (a *Application) runSuites(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	suites, err := orchestration.SelectSuites(a.Config.Suite, a.Registry)
	if err != nil {
		fmt.Fprintln(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.RunID, out)
		cli.PrintExecutionMode(suites, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	observer := runObserver{
		metrics: metrics.NewRunMetrics(a.RunID, strconv.FormatUint(a.Config.Seed, 16), a.Config.Profile),
		memory:  metrics.NewMemoryCollector(),
		logger:  a.Logger,
	}
	results := orchestration.ExecuteSuites(ctx, suites, orchestration.RunOptions{
		Options:  a.harnessOptions(),
		Workers:  a.Config.Workers,
		Observer: observer,
	}, progressReporter, progressOut)

	presOpts := orchestration.PresentationOptions{Verbose: a.Config.Verbose, Quiet: a.Config.Quiet}
	exitCode := orchestration.AnalyzeResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if a.Config.Quiet && exitCode == apperrors.ExitSuccess {
		fmt.Fprintln(out, cli.FormatQuietSummary(results))
	}
	if a.Config.Verbose {
		allocated, gcCycles, pauseNs := observer.memory.SinceBaseline()
		cli.DisplayMemoryStats(observer.memory.PeakHeap(), allocated, gcCycles, pauseNs, out)
	}

	return a.writeArtifacts(results, observer, exitCode, out)
}

// writeArtifacts writes the failure report and the metrics textfile when
// requested. Failing to write the metrics turns a successful run into a
// generic failure.
func (a *Application) writeArtifacts(results []orchestration.SuiteResult, observer runObserver, exitCode int, out io.Writer) int {
	if a.Config.OutputFile != "" && exitCode == apperrors.ExitErrorMismatch {
		if err := cli.WriteFailureReport(a.Config.OutputFile, a.Config, results); err != nil {
			a.Logger.Error("writing failure report", err, logging.String("path", a.Config.OutputFile))
		} else if !a.Config.Quiet {
			fmt.Fprintf(out, "%sFailure report written to %s%s\n", ui.ColorYellow(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if a.Config.MetricsFile != "" {
		observer.metrics.SetPeakHeap(observer.memory.PeakHeap())
		if err := observer.metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("writing metrics", err, logging.String("path", a.Config.MetricsFile))
			if exitCode == apperrors.ExitSuccess {
				return apperrors.ExitErrorGeneric
			}
		}
	}
	return exitCode
}
