package cli

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/mjakub/bignum/internal/cli/mocks"
	"github.com/mjakub/bignum/internal/progress"
)

// MockSpinner records calls for tests that do not need call expectations.
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func withSpinner(t *testing.T, s Spinner) {
	t.Helper()
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	newSpinner = func(options ...spinner.Option) Spinner { return s }
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("suffix = %q", s.Suffix)
	}
}

func TestDisplayProgress(t *testing.T) {
	mockS := &MockSpinner{}
	withSpinner(t, mockS)

	var wg sync.WaitGroup
	wg.Add(1)

	progressChan := make(chan progress.ProgressUpdate)
	go func() {
		progressChan <- progress.ProgressUpdate{SuiteIndex: 0, Value: 0.5}
		progressChan <- progress.ProgressUpdate{SuiteIndex: 1, Value: 0.25}
		time.Sleep(10 * time.Millisecond)
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 2, io.Discard)
	wg.Wait()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
	if !strings.Contains(mockS.suffix, "Running 2 suites (2 done)") || !strings.Contains(mockS.suffix, "100.0%") {
		t.Errorf("final suffix %q should show the completed run", mockS.suffix)
	}
}

func TestDisplayProgressCallOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	withSpinner(t, mockS)

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes(),
		mockS.EXPECT().Stop(),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Value: 1}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 1, io.Discard)
	wg.Wait()
}

func TestDisplayProgress_ZeroSuites(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No calls are expected: the spinner is never created.
	withSpinner(t, mocks.NewMockSpinner(ctrl))

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Value: 0.5}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}
