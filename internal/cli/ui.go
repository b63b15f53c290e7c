//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate so frames and text stay in step.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner followed by the average progress of all
// running suites and an ETA. It returns, and calls wg.Done, once
// progressChan is closed.
//
// Parameters:
//   - wg: Signalled when the display has stopped.
//   - progressChan: Updates sent by the suites.
//   - numSuites: The number of suites feeding progressChan.
//   - out: The terminal writer.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numSuites)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	render := func(avg float64, eta time.Duration, finished int) {
		label := "Running suite"
		if agg.IsMultiSuite() {
			label = fmt.Sprintf("Running %d suites (%d done)", agg.NumSuites(), finished)
		}
		s.UpdateSuffix(fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth)))
	}

	render(0, 0, 0)
	s.Start()
	defer func() {
		s.Stop()
		fmt.Fprintln(out)
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var (
		avg float64
		eta time.Duration
	)
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				render(1, 0, agg.NumSuites())
				return
			}
			p := agg.Update(update)
			avg, eta = p.AverageProgress, p.ETA
		case <-ticker.C:
			render(avg, eta, agg.Finished())
		}
	}
}
