package tui

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/progress"
)

// programRef lets the run goroutines reach the program. bubbletea copies
// the model on every Update, so the model holds a pointer to this rather
// than the program itself.
type programRef struct {
	p atomic.Pointer[tea.Program]
}

func (r *programRef) SetProgram(p *tea.Program) { r.p.Store(p) }

// Send delivers msg to the program, dropping it until SetProgram is called.
func (r *programRef) Send(msg tea.Msg) {
	if p := r.p.Load(); p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter turns the suites' progress stream into ProgressMsg.
type TUIProgressReporter struct {
	ref *programRef
}

// TUIResultPresenter hands the outcome of a run to the dashboard instead
// of printing it.
type TUIResultPresenter struct {
	ref *programRef
}

var (
	_ orchestration.ProgressReporter  = (*TUIProgressReporter)(nil)
	_ orchestration.ResultPresenter   = (*TUIResultPresenter)(nil)
	_ orchestration.DurationFormatter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler      = (*TUIResultPresenter)(nil)
)

func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numSuites)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}
	for ap := range agg.Aggregate(progressChan) {
		t.ref.Send(ProgressMsg(ap))
	}
	t.ref.Send(ProgressDoneMsg{})
}

func (t *TUIResultPresenter) PresentSummaryTable(results []orchestration.SuiteResult, _ io.Writer) {
	t.ref.Send(SuiteResultsMsg{Results: results})
}

// PresentFailures does nothing here. The log panel lists mismatch counts
// and --output carries the full listing.
func (t *TUIResultPresenter) PresentFailures([]orchestration.SuiteResult, bool, io.Writer) {}

func (t *TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError shows err in the log panel and maps it to an exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleSuiteError(err, duration, io.Discard, nil)
}
