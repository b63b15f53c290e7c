package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// etaSmoothing weights the newest rate sample in the moving average.
	etaSmoothing = 0.3
	// etaMinSample is the shortest interval that yields a rate sample.
	etaMinSample = 100 * time.Millisecond
	// etaCap bounds the estimate shown to the user.
	etaCap = 24 * time.Hour
)

// ProgressState tracks the completed fraction of each suite in a run and
// averages them into one value.
type ProgressState struct {
	progresses []float64
	numSuites  int
}

// NewProgressState returns a ProgressState for numSuites suites.
func NewProgressState(numSuites int) *ProgressState {
	if numSuites < 0 {
		numSuites = 0
	}
	return &ProgressState{
		progresses: make([]float64, numSuites),
		numSuites:  numSuites,
	}
}

// Update records value for the suite at index, clamped to [0, 1]. Indices
// outside the run are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean completed fraction across suites.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numSuites == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numSuites)
}

// ProgressWithETA extends ProgressState with a smoothed completion rate used
// to estimate the time remaining.
type ProgressWithETA struct {
	*ProgressState
	numSuites    int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	// progressRate is the smoothed completed fraction per second.
	progressRate float64
}

// NewProgressWithETA returns a tracker for numSuites suites, starting the
// clock now.
func NewProgressWithETA(numSuites int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numSuites),
		numSuites:     numSuites,
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a suite update and returns the average progress and
// the current time estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate)
	if elapsed >= etaMinSample && avg > p.lastProgress {
		sample := (avg - p.lastProgress) / elapsed.Seconds()
		if p.progressRate == 0 {
			p.progressRate = sample
		} else {
			p.progressRate = etaSmoothing*sample + (1-etaSmoothing)*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, or zero while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()
	if p.progressRate <= 0 || avg <= 0 || avg >= 1 {
		return 0
	}
	seconds := (1 - avg) / p.progressRate
	if seconds >= etaCap.Seconds() {
		return etaCap
	}
	return time.Duration(seconds * float64(time.Second))
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// FormatETA renders an estimate compactly: "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta / time.Hour)
	m := int(eta % time.Hour / time.Minute)
	s := int(eta % time.Minute / time.Second)
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a bar of length cells for a completed fraction.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := range length {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA renders "[bar]  42.0% ETA: 1m5s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
