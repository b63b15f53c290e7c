package orchestration

import (
	"iter"
	"time"

	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/progress"
)

// AggregatedProgress is the view of the whole run after one suite update.
type AggregatedProgress struct {
	SuiteIndex int
	Value      float64
	// AverageProgress is the mean completed fraction over all suites.
	AverageProgress float64
	ETA             time.Duration
	// Finished counts the suites that have reported completion.
	Finished int
}

// ProgressAggregator turns the per-suite update stream into run-wide
// progress. The CLI spinner and the dashboard bridge both read the run
// through one.
type ProgressAggregator struct {
	eta      *format.ProgressWithETA
	finished []bool
	done     int
}

// NewProgressAggregator returns nil when there is nothing to track.
func NewProgressAggregator(numSuites int) *ProgressAggregator {
	if numSuites <= 0 {
		return nil
	}
	return &ProgressAggregator{
		eta:      format.NewProgressWithETA(numSuites),
		finished: make([]bool, numSuites),
	}
}

// Update folds one suite update into the run. Updates for unknown suite
// indices leave the run unchanged.
func (a *ProgressAggregator) Update(u progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.eta.UpdateWithETA(u.SuiteIndex, u.Value)
	if u.Value >= 1 && u.SuiteIndex >= 0 && u.SuiteIndex < len(a.finished) && !a.finished[u.SuiteIndex] {
		a.finished[u.SuiteIndex] = true
		a.done++
	}
	return AggregatedProgress{
		SuiteIndex:      u.SuiteIndex,
		Value:           u.Value,
		AverageProgress: avg,
		ETA:             eta,
		Finished:        a.done,
	}
}

// Aggregate consumes updates until the channel closes, yielding the run
// state after each one. Stopping the iteration early drains the rest of
// the channel so senders never block.
func (a *ProgressAggregator) Aggregate(updates <-chan progress.ProgressUpdate) iter.Seq[AggregatedProgress] {
	return func(yield func(AggregatedProgress) bool) {
		for u := range updates {
			if !yield(a.Update(u)) {
				DrainChannel(updates)
				return
			}
		}
	}
}

// Average is the current mean progress, for refreshing between updates.
func (a *ProgressAggregator) Average() float64 { return a.eta.CalculateAverage() }

func (a *ProgressAggregator) ETA() time.Duration { return a.eta.GetETA() }

func (a *ProgressAggregator) NumSuites() int { return len(a.finished) }

func (a *ProgressAggregator) Finished() int { return a.done }

func (a *ProgressAggregator) IsMultiSuite() bool { return len(a.finished) > 1 }

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
