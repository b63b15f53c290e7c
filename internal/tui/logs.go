package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjakub/bignum/internal/config"
	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/orchestration"
)

// progressMilestones is how many log lines a suite emits on its way to 100%.
const progressMilestones = 4

// LogsModel is the scrolling event log of a run.
type LogsModel struct {
	viewport   viewport.Model
	entries    []string
	suiteNames []string
	milestones []int
	width      int
	height     int
}

// NewLogsModel creates a log for the named suites.
func NewLogsModel(suiteNames []string) LogsModel {
	return LogsModel{
		viewport:   viewport.New(0, 0),
		suiteNames: suiteNames,
		milestones: make([]int, len(suiteNames)),
	}
}

// SetSize updates the panel dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.viewport.Width = max(w-4, 0)
	l.viewport.Height = max(h-3, 0)
	l.sync()
}

func (l *LogsModel) add(line string) {
	stamp := logTimeStyle.Render(time.Now().Format("15:04:05"))
	l.entries = append(l.entries, stamp+" "+line)
	l.sync()
}

func (l *LogsModel) sync() {
	atBottom := l.viewport.AtBottom()
	l.viewport.SetContent(strings.Join(l.entries, "\n"))
	if atBottom || l.viewport.PastBottom() {
		l.viewport.GotoBottom()
	}
}

// AddRunConfig logs the parameters of the run.
func (l *LogsModel) AddRunConfig(cfg config.AppConfig) {
	l.add(fmt.Sprintf("%s %d suites, profile %s, seed %#x",
		logSuiteStyle.Render("run"), len(l.suiteNames), cfg.Profile, cfg.Seed))
	l.add(fmt.Sprintf("%s %s trials of up to %d words, %d workers",
		logSuiteStyle.Render("run"), format.FormatCount(cfg.Trials), cfg.MaxWords, cfg.Workers))
}

// AddProgressEntry logs a suite crossing a quarter of its trials.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	i := msg.SuiteIndex
	if i < 0 || i >= len(l.milestones) {
		return
	}
	reached := int(msg.Value * progressMilestones)
	if reached <= l.milestones[i] || reached >= progressMilestones {
		return
	}
	l.milestones[i] = reached
	l.add(fmt.Sprintf("%s %s",
		logSuiteStyle.Render(l.suiteNames[i]),
		logProgressStyle.Render(fmt.Sprintf("%d%%", reached*100/progressMilestones))))
}

// AddResults logs one line per finished suite.
func (l *LogsModel) AddResults(results []orchestration.SuiteResult) {
	for _, r := range results {
		name := logSuiteStyle.Render(r.Name)
		dur := format.FormatExecutionDuration(r.Duration)
		switch {
		case r.Err != nil:
			l.add(fmt.Sprintf("%s %s after %s: %v", name, logErrorStyle.Render("failed"), dur, r.Err))
		case !r.Report.Passed():
			l.add(fmt.Sprintf("%s %s", name, logErrorStyle.Render(fmt.Sprintf("%d mismatches", len(r.Report.Failures)))))
		default:
			l.add(fmt.Sprintf("%s %s %s trials in %s, digest %s", name, logSuccessStyle.Render("ok"),
				format.FormatCount(r.Report.Trials), dur, r.Report.DigestString()))
		}
	}
}

// AddError logs the error that decided the exit status.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(logErrorStyle.Render(fmt.Sprintf("error after %s: %v", format.FormatExecutionDuration(msg.Duration), msg.Err)))
}

// Reset clears the log for a new run.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.milestones = make([]int, len(l.suiteNames))
	l.sync()
}

// Update forwards scroll keys to the viewport.
func (l *LogsModel) Update(msg tea.Msg) {
	l.viewport, _ = l.viewport.Update(msg)
}

// View renders the panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

func (l LogsModel) renderToHeight(h int) string {
	vp := l.viewport
	vp.Height = max(h-3, 0)
	return panelStyle.
		Width(max(l.width-2, 0)).
		Height(max(h-2, 0)).
		Render(" " + titleStyle.Render("Log") + "\n" + vp.View())
}
