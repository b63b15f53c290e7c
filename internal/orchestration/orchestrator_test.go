package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/progress"
)

// MockResultPresenter records what it was asked to present.
type MockResultPresenter struct {
	mu        sync.Mutex
	tables    int
	failures  int
	lastOrder []string
}

func (m *MockResultPresenter) PresentSummaryTable(results []SuiteResult, out io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables++
	m.lastOrder = m.lastOrder[:0]
	for _, r := range results {
		m.lastOrder = append(m.lastOrder, r.Name)
	}
}

func (m *MockResultPresenter) PresentFailures(results []SuiteResult, verbose bool, out io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

// mockErrorHandler maps errors through apperrors without printing.
type mockErrorHandler struct{}

func (mockErrorHandler) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.ExitCodeFor(err)
}

// MockSuite is a harness.Suite whose Run is supplied by the test.
type MockSuite struct {
	NameValue string
	KindValue harness.Kind
	RunFunc   func(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error)
}

func (m *MockSuite) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return "mock"
}

func (m *MockSuite) Kind() harness.Kind   { return m.KindValue }
func (m *MockSuite) Description() string { return "mock suite" }

func (m *MockSuite) Run(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, opts, report)
	}
	return harness.Report{Suite: m.Name(), Trials: opts.Trials}, nil
}

type recordingObserver struct {
	mu    sync.Mutex
	names []string
}

func (o *recordingObserver) ObserveResult(r SuiteResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.names = append(o.names, r.Name)
}

// TestExecuteSuites verifies that the orchestrator runs suites and collects
// their results in input order.
func TestExecuteSuites(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		suites      []harness.Suite
		expectError []bool
	}{
		{
			name:        "Single success",
			suites:      []harness.Suite{&MockSuite{NameValue: "a"}},
			expectError: []bool{false},
		},
		{
			name: "Single failure",
			suites: []harness.Suite{&MockSuite{NameValue: "a",
				RunFunc: func(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error) {
					return harness.Report{}, apperrors.SuiteError{Suite: "a", Cause: errors.New("mock error")}
				},
			}},
			expectError: []bool{true},
		},
		{
			name: "Failure does not stop others",
			suites: []harness.Suite{
				&MockSuite{NameValue: "bad", RunFunc: func(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error) {
					return harness.Report{}, errors.New("boom")
				}},
				&MockSuite{NameValue: "good"},
			},
			expectError: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			obs := &recordingObserver{}
			opts := RunOptions{Options: harness.Options{Trials: 5}, Workers: 1, Observer: obs}
			results := ExecuteSuites(context.Background(), tt.suites, opts, NullProgressReporter{}, io.Discard)
			if len(results) != len(tt.suites) {
				t.Fatalf("expected %d results, got %d", len(tt.suites), len(results))
			}
			for i, r := range results {
				if r.Name != tt.suites[i].Name() {
					t.Errorf("result %d is %q, want %q", i, r.Name, tt.suites[i].Name())
				}
				if (r.Err != nil) != tt.expectError[i] {
					t.Errorf("result %d: err = %v, expectError = %v", i, r.Err, tt.expectError[i])
				}
			}
			if len(obs.names) != len(tt.suites) {
				t.Errorf("observer saw %d results, want %d", len(obs.names), len(tt.suites))
			}
		})
	}
}

// TestExecuteSuitesRespectsWorkerLimit checks that no more than Workers
// suites run at once.
func TestExecuteSuitesRespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	running, peak := 0, 0
	run := func(ctx context.Context, opts harness.Options, report progress.Reporter) (harness.Report, error) {
		mu.Lock()
		running++
		peak = max(peak, running)
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		mu.Lock()
		running--
		mu.Unlock()
		return harness.Report{}, nil
	}
	suites := make([]harness.Suite, 8)
	for i := range suites {
		suites[i] = &MockSuite{RunFunc: run}
	}
	ExecuteSuites(context.Background(), suites, RunOptions{Workers: 2}, NullProgressReporter{}, io.Discard)
	if peak > 2 {
		t.Errorf("peak concurrency %d exceeds the limit of 2", peak)
	}
}

// TestExecuteSuitesRealHarness runs actual harness suites end to end.
func TestExecuteSuitesRealHarness(t *testing.T) {
	t.Parallel()

	suites, err := SelectSuites("add_fuzz,div_fuzz,div_timing", harness.DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	opts := RunOptions{Options: harness.Options{Trials: 100, MaxWords: 6, Seed: harness.DefaultSeed}}
	results := ExecuteSuites(context.Background(), suites, opts, NullProgressReporter{}, io.Discard)
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s failed: %v", r.Name, r.Err)
		}
		if r.Report.Trials != 100 {
			t.Errorf("%s ran %d trials, want 100", r.Name, r.Report.Trials)
		}
	}
}

// TestAnalyzeResults verifies the exit code and ordering logic.
func TestAnalyzeResults(t *testing.T) {
	t.Parallel()
	mismatch := apperrors.SuiteError{Suite: "B", Cause: &apperrors.MismatchError{Op: "mul"}}
	canceled := apperrors.SuiteError{Suite: "C", Cause: context.Canceled}
	timeout := apperrors.SuiteError{Suite: "D", Cause: context.DeadlineExceeded}

	tests := []struct {
		name           string
		results        []SuiteResult
		expectedStatus int
		firstName      string
	}{
		{
			name: "All success",
			results: []SuiteResult{
				{Name: "A", Duration: 2 * time.Millisecond},
				{Name: "B", Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			firstName:      "B",
		},
		{
			name: "Mismatch",
			results: []SuiteResult{
				{Name: "A", Duration: time.Millisecond},
				{Name: "B", Duration: 2 * time.Millisecond, Err: mismatch},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
			firstName:      "B",
		},
		{
			name: "Mismatch outranks cancellation",
			results: []SuiteResult{
				{Name: "C", Err: canceled},
				{Name: "B", Err: mismatch},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "Timeout outranks cancellation",
			results: []SuiteResult{
				{Name: "C", Err: canceled},
				{Name: "D", Err: timeout},
			},
			expectedStatus: apperrors.ExitErrorTimeout,
		},
		{
			name:           "Generic failure",
			results:        []SuiteResult{{Name: "A", Err: errors.New("fail")}},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			presenter := &MockResultPresenter{}
			status := AnalyzeResults(tt.results, PresentationOptions{}, presenter, mockErrorHandler{}, io.Discard)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if presenter.tables != 1 || presenter.failures != 1 {
				t.Errorf("presenter called %d/%d times, want 1/1", presenter.tables, presenter.failures)
			}
			if tt.firstName != "" && presenter.lastOrder[0] != tt.firstName {
				t.Errorf("first row %q, want %q", presenter.lastOrder[0], tt.firstName)
			}
		})
	}
}

// TestAnalyzeResultsQuiet checks that quiet mode prints only on failure.
func TestAnalyzeResultsQuiet(t *testing.T) {
	t.Parallel()

	presenter := &MockResultPresenter{}
	var out bytes.Buffer
	status := AnalyzeResults([]SuiteResult{{Name: "A"}}, PresentationOptions{Quiet: true}, presenter, mockErrorHandler{}, &out)
	if status != apperrors.ExitSuccess || out.Len() != 0 || presenter.tables != 0 {
		t.Errorf("quiet success printed %q (tables=%d)", out.String(), presenter.tables)
	}

	out.Reset()
	status = AnalyzeResults([]SuiteResult{{Name: "A", Err: errors.New("x")}}, PresentationOptions{Quiet: true}, presenter, mockErrorHandler{}, &out)
	if status != apperrors.ExitErrorGeneric || !strings.Contains(out.String(), "1 failed") {
		t.Errorf("quiet failure: status %d, output %q", status, out.String())
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]SuiteResult{
		{Report: harness.Report{Trials: 3, Ops: 9}},
		{Report: harness.Report{Trials: 1, Ops: 2}, Err: context.Canceled},
		{Err: errors.New("x")},
	})
	want := Summary{Passed: 1, Failed: 1, Canceled: 1, Trials: 4, Ops: 11}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}
