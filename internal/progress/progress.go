// Package progress carries suite progress from the harness to whichever
// front end is displaying it.
package progress

// ProgressUpdate is a single progress notification from a running suite.
type ProgressUpdate struct {
	// SuiteIndex identifies the suite within the current run.
	SuiteIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// Reporter receives the completed fraction of a suite's work.
type Reporter func(value float64)

// Discard is a Reporter that ignores every update.
func Discard(float64) {}

// ChannelReporter returns a Reporter that publishes updates for the suite at
// index on ch. Sends never block: when the consumer falls behind the update
// is dropped, since a later one supersedes it.
func ChannelReporter(ch chan<- ProgressUpdate, index int) Reporter {
	return func(value float64) {
		select {
		case ch <- ProgressUpdate{SuiteIndex: index, Value: value}:
		default:
		}
	}
}

// Tracker converts a trial counter into Reporter calls, reporting only when
// the completed percentage changes.
type Tracker struct {
	total    int
	lastPct  int
	reporter Reporter
}

// NewTracker returns a Tracker for total units of work. A nil reporter
// discards updates.
func NewTracker(total int, reporter Reporter) *Tracker {
	if reporter == nil {
		reporter = Discard
	}
	return &Tracker{total: total, lastPct: -1, reporter: reporter}
}

// Step records that done units of work are complete.
func (t *Tracker) Step(done int) {
	if t.total <= 0 {
		return
	}
	pct := done * 100 / t.total
	if pct > 100 {
		pct = 100
	}
	if pct == t.lastPct {
		return
	}
	t.lastPct = pct
	t.reporter(float64(pct) / 100)
}

// Finish reports completion.
func (t *Tracker) Finish() {
	if t.lastPct != 100 {
		t.lastPct = 100
		t.reporter(1.0)
	}
}
