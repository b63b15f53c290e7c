package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the key help on the left and the run state on the right.
type FooterModel struct {
	keys     []key.Binding
	width    int
	paused   bool
	done     bool
	hasError bool
}

// NewFooterModel builds a footer advertising the given bindings.
func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{keys: []key.Binding{km.Quit, km.Pause, km.Reset, km.Up, km.Down}}
}

func (f *FooterModel) SetWidth(w int) { f.width = w }
func (f *FooterModel) SetPaused(p bool) { f.paused = p }
func (f *FooterModel) SetDone(d bool) { f.done = d }
func (f *FooterModel) SetError(e bool) { f.hasError = e }

func (f FooterModel) status() string {
	switch {
	case f.hasError:
		return statusErrorStyle.Render("FAILED")
	case f.done:
		return statusDoneStyle.Render("DONE")
	case f.paused:
		return statusPausedStyle.Render("PAUSED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	parts := make([]string, 0, len(f.keys))
	for _, k := range f.keys {
		h := k.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	left := " " + strings.Join(parts, "  ")
	right := f.status() + " "

	gap := f.width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(gap, 0)) + right
}
