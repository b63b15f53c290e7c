package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mjakub/bignum/internal/format"
)

const headerTitle = "vec32check Monitor"

// HeaderModel is the one-line title bar. It shows how many suites have
// finished and a run clock that stops when the run ends.
type HeaderModel struct {
	title     string
	numSuites int
	finished  int

	startTime time.Time
	endTime   time.Time // zero while running

	width int
}

func NewHeaderModel(version string, numSuites int) HeaderModel {
	title := headerTitle
	if version != "" && version != "dev" {
		title = fmt.Sprintf("%s %s", headerTitle, version)
	}
	return HeaderModel{title: title, numSuites: numSuites, startTime: time.Now()}
}

func (h *HeaderModel) SetWidth(w int) { h.width = w }

// SetFinished records how many suites have completed so far.
func (h *HeaderModel) SetFinished(n int) { h.finished = min(n, h.numSuites) }

// SetDone stops the clock.
func (h *HeaderModel) SetDone() { h.endTime = time.Now() }

// Reset restarts the clock and the finished count for a new run.
func (h *HeaderModel) Reset() {
	h.startTime, h.endTime = time.Now(), time.Time{}
	h.finished = 0
}

func (h HeaderModel) Elapsed() time.Duration {
	end := h.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(h.startTime)
}

func (h HeaderModel) View() string {
	sep := versionStyle.Render(" | ")
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(h.title),
		sep,
		versionStyle.Render(fmt.Sprintf("%d/%d suites", h.finished, h.numSuites)),
		sep,
		elapsedStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed())),
	)
	// headerStyle pads by one cell on each side.
	return headerStyle.Width(h.width).Render(lipgloss.PlaceHorizontal(max(h.width-2, 0), lipgloss.Left, row))
}
