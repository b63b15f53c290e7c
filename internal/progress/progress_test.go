package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerReportsPercentChanges(t *testing.T) {
	t.Parallel()

	var got []float64
	tr := NewTracker(400, func(v float64) { got = append(got, v) })
	for i := range 400 {
		tr.Step(i)
	}
	tr.Finish()
	tr.Finish()

	assert.Len(t, got, 101)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 1.0, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}

func TestTrackerZeroTotal(t *testing.T) {
	t.Parallel()

	calls := 0
	tr := NewTracker(0, func(float64) { calls++ })
	tr.Step(5)
	tr.Finish()
	assert.Equal(t, 1, calls)
}

func TestTrackerNilReporter(t *testing.T) {
	t.Parallel()

	tr := NewTracker(10, nil)
	assert.NotPanics(t, func() {
		tr.Step(3)
		tr.Finish()
	})
}

func TestChannelReporterDoesNotBlock(t *testing.T) {
	t.Parallel()

	ch := make(chan ProgressUpdate, 1)
	report := ChannelReporter(ch, 3)
	report(0.25)
	report(0.5) // dropped, buffer full

	assert.Equal(t, ProgressUpdate{SuiteIndex: 3, Value: 0.25}, <-ch)
	assert.Empty(t, ch)
}
