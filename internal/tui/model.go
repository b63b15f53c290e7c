package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjakub/bignum/internal/config"
	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
)

// Dashboard geometry. The log panel takes the left part of the body and the
// metrics panel sits above the chart on the right.
const (
	logsWidthPercent = 55
	maxMetricsHeight = 9
	minBodyHeight    = 4
)

type panelSizes struct {
	width, body        int
	logs, right        int
	metrics, chartRows int
}

func computeSizes(width, height, tableHeight int) panelSizes {
	body := max(height-2-tableHeight, minBodyHeight) // header and footer rows
	logs := width * logsWidthPercent / 100
	metrics := min(maxMetricsHeight, body/2)
	return panelSizes{
		width: width, body: body,
		logs: logs, right: width - logs,
		metrics: metrics, chartRows: body - metrics,
	}
}

// runState is the part of the model that belongs to one run. A reset
// replaces it and bumps generation so that late messages from the previous
// run are ignored.
type runState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	runState

	header  HeaderModel
	table   SuitesModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel
	keys    KeyMap

	width, height int
	paused        bool

	parent context.Context
	suites []harness.Suite
	cfg    config.AppConfig
	ref    *programRef
}

func NewModel(parent context.Context, suites []harness.Suite, cfg config.AppConfig, version string) Model {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name()
	}
	logs := NewLogsModel(names)
	logs.AddRunConfig(cfg)

	keys := DefaultKeyMap()
	m := Model{
		header:  NewHeaderModel(version, len(suites)),
		table:   NewSuitesModel(suites),
		logs:    logs,
		metrics: NewMetricsModel(),
		chart:   NewChartModel(),
		footer:  NewFooterModel(keys),
		keys:    keys,
		parent:  parent,
		suites:  suites,
		cfg:     cfg,
		ref:     &programRef{},
	}
	m.runState = m.newRun(0)
	return m
}

func (m Model) newRun(generation uint64) runState {
	ctx, cancel := context.WithCancel(m.parent)
	return runState{ctx: ctx, cancel: cancel, generation: generation, exitCode: apperrors.ExitSuccess}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.suites, m.cfg, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case ProgressMsg:
		m.onProgress(msg)
	case SuiteResultsMsg:
		m.table.SetResults(msg.Results)
		m.logs.AddResults(msg.Results)
		m.metrics.SetSummary(msg.Results)
		m.header.SetFinished(len(msg.Results))
	case ErrorMsg:
		m.logs.AddError(msg)
		m.footer.SetError(true)
	case TickMsg:
		return m, m.onTick()
	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
	case RunCompleteMsg:
		if msg.Generation == m.generation {
			m.finish(msg.ExitCode)
		}
	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			break
		}
		code := m.exitCode
		if code == apperrors.ExitSuccess {
			code = apperrors.ExitCodeFor(msg.Err)
		}
		m.finish(code)
		return m, tea.Quit
	}
	return m, nil
}

// onProgress always moves the suite table; the log, chart and speed only
// follow while the dashboard is not paused.
func (m *Model) onProgress(msg ProgressMsg) {
	m.table.UpdateProgress(msg.SuiteIndex, msg.Value)
	m.header.SetFinished(msg.Finished)
	if m.paused {
		return
	}
	m.logs.AddProgressEntry(msg)
	m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
	m.metrics.UpdateProgress(msg.AverageProgress)
}

func (m *Model) onTick() tea.Cmd {
	switch {
	case m.done:
		return nil
	case m.paused:
		return tickCmd()
	}
	return tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
}

func (m *Model) finish(exitCode int) {
	m.done = true
	m.exitCode = exitCode
	m.header.SetDone()
	m.chart.SetDone(m.header.Elapsed())
	m.footer.SetDone(true)
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
	case key.Matches(msg, m.keys.Reset):
		return m.restart()
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		m.logs.Update(msg)
	}
	return m, nil
}

// restart cancels the current run and starts the same suites again with a
// clean dashboard.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.cancel()
	m.runState = m.newRun(m.generation + 1)
	m.paused = false

	m.header.Reset()
	m.table.Reset()
	m.logs.Reset()
	m.chart.Reset()
	m.metrics = NewMetricsModel()
	m.footer = NewFooterModel(m.keys)
	m.resize()
	return m, m.Init()
}

func (m *Model) resize() {
	s := computeSizes(m.width, m.height, m.table.Height())
	m.header.SetWidth(s.width)
	m.footer.SetWidth(s.width)
	m.table.SetWidth(s.width)
	m.logs.SetSize(s.logs, s.body)
	m.metrics.SetSize(s.right, s.metrics)
	m.chart.SetSize(s.right, s.chartRows)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.logs.renderToHeight(lipgloss.Height(right)), right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), m.table.View(), body, m.footer.View())
}

// Run shows the dashboard until the user quits or ctx ends, and returns the
// exit code of the last run.
func Run(ctx context.Context, suites []harness.Suite, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, suites, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Set before Run: Init starts the goroutines that send through ref.
	model.ref.SetProgram(p)

	final, err := p.Run()
	m, ok := final.(Model)
	switch {
	case ok:
		m.cancel()
		if err != nil && !m.done {
			return apperrors.ExitCodeFor(err)
		}
		return m.exitCode
	case err != nil:
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
