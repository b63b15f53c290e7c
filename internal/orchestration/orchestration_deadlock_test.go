package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/progress"
)

// behaviorSuite simulates the ways a suite can stress the orchestrator.
type behaviorSuite struct {
	name     string
	behavior string // "instant", "slow", "mismatch", "progress_flood"
	delay    time.Duration
}

func (b *behaviorSuite) Name() string        { return b.name }
func (b *behaviorSuite) Kind() harness.Kind  { return harness.KindFuzz }
func (b *behaviorSuite) Description() string { return b.behavior }

func (b *behaviorSuite) Run(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error) {
	rep := harness.Report{Suite: b.name}
	switch b.behavior {
	case "slow":
		for i := range 100 {
			if err := ctx.Err(); err != nil {
				return rep, apperrors.SuiteError{Suite: b.name, Cause: err}
			}
			report(float64(i) / 100)
			rep.Trials++
			time.Sleep(b.delay)
		}
	case "mismatch":
		mm := &apperrors.MismatchError{Op: "add", Want: "1", Got: "2"}
		rep.Failures = append(rep.Failures, mm)
		return rep, apperrors.SuiteError{Suite: b.name, Cause: mm}
	case "progress_flood":
		for i := range 10000 {
			report(float64(i) / 10000)
		}
	}
	report(1)
	return rep, nil
}

// drainingReporter drains the channel like a display that never renders.
type drainingReporter struct{}

func (drainingReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// stalledReporter consumes nothing until the channel closes.
type stalledReporter struct{ release chan struct{} }

func (s stalledReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	<-s.release
	DrainChannel(progressChan)
}

func runWithDeadline(t *testing.T, limit time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(limit):
		t.Fatal("DEADLOCK: ExecuteSuites did not complete within timeout")
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteSuites
// completes under various suite behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name   string
		suites []harness.Suite
	}{
		{
			name: "all_instant",
			suites: []harness.Suite{
				&behaviorSuite{name: "s1", behavior: "instant"},
				&behaviorSuite{name: "s2", behavior: "instant"},
				&behaviorSuite{name: "s3", behavior: "instant"},
			},
		},
		{
			name: "mixed_instant_and_slow",
			suites: []harness.Suite{
				&behaviorSuite{name: "fast", behavior: "instant"},
				&behaviorSuite{name: "slow", behavior: "slow", delay: time.Millisecond},
			},
		},
		{
			name: "mixed_with_mismatch",
			suites: []harness.Suite{
				&behaviorSuite{name: "ok", behavior: "instant"},
				&behaviorSuite{name: "bad", behavior: "mismatch"},
			},
		},
		{
			name: "progress_flood",
			suites: []harness.Suite{
				&behaviorSuite{name: "flood1", behavior: "progress_flood"},
				&behaviorSuite{name: "flood2", behavior: "progress_flood"},
			},
		},
		{
			name:   "single_suite",
			suites: []harness.Suite{&behaviorSuite{name: "solo", behavior: "instant"}},
		},
		{
			name:   "no_suites",
			suites: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			var results []SuiteResult
			runWithDeadline(t, 10*time.Second, func() {
				results = ExecuteSuites(ctx, tc.suites, RunOptions{Workers: 2}, drainingReporter{}, io.Discard)
			})
			if len(results) != len(tc.suites) {
				t.Errorf("got %d results, want %d", len(results), len(tc.suites))
			}
		})
	}
}

// TestOrchestrationNoDeadlock_StalledDisplay verifies that a display that
// stops reading cannot block the suites, because reports never block.
func TestOrchestrationNoDeadlock_StalledDisplay(t *testing.T) {
	reporter := stalledReporter{release: make(chan struct{})}
	suites := []harness.Suite{
		&behaviorSuite{name: "flood", behavior: "progress_flood"},
		&behaviorSuite{name: "slow", behavior: "slow", delay: time.Microsecond},
	}

	finished := make(chan struct{})
	go func() {
		// The suites finish while the display is stalled; only then is it
		// released so ExecuteSuites can close the channel and return.
		time.Sleep(200 * time.Millisecond)
		close(reporter.release)
		close(finished)
	}()
	runWithDeadline(t, 10*time.Second, func() {
		ExecuteSuites(context.Background(), suites, RunOptions{}, reporter, io.Discard)
	})
	<-finished
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during execution does not cause a deadlock and that the
// interrupted suites report a context error.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	suites := []harness.Suite{
		&behaviorSuite{name: "slow1", behavior: "slow", delay: 100 * time.Millisecond},
		&behaviorSuite{name: "slow2", behavior: "slow", delay: 100 * time.Millisecond},
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	var results []SuiteResult
	runWithDeadline(t, 5*time.Second, func() {
		results = ExecuteSuites(ctx, suites, RunOptions{}, drainingReporter{}, io.Discard)
	})
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", r.Name, r.Err)
		}
	}
	if code := AnalyzeResults(results, PresentationOptions{Quiet: true}, &MockResultPresenter{}, mockErrorHandler{}, io.Discard); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}
