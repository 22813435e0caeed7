package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar gauges where the outermost split sits across its rect.
// A static gauge jumps to its value instead of animating.
type ProgressBar struct {
	bar     progress.Model
	width   int
	percent float64
	static  bool
	hasData bool
}

// NewProgressBar creates a new gauge component.
func NewProgressBar(static bool) *ProgressBar {
	return &ProgressBar{
		static: static,
		bar: progress.New(
			progress.WithScaledGradient(string(ColorBlue), string(ColorGreen)),
			progress.WithFillCharacters('─', '─'),
			progress.WithoutPercentage(),
		),
	}
}

// SetWidth sets the component width.
func (m *ProgressBar) SetWidth(w int) { m.width = w }

// Update handles messages.
func (m *ProgressBar) Update(teaMsg tea.Msg) tea.Cmd {
	switch t := teaMsg.(type) {
	case SnapshotMsg:
		if len(t.Snapshot.Splits) == 0 {
			return nil
		}
		m.hasData = true
		m.percent = float64(t.Snapshot.Splits[0].Fraction)
		if m.static {
			return nil
		}
		return m.bar.SetPercent(m.percent)
	case progress.FrameMsg:
		model, cmd := m.bar.Update(t)
		if bar, ok := model.(progress.Model); ok {
			m.bar = bar
		}
		return cmd
	}
	return nil
}

// View renders the component.
func (m *ProgressBar) View() string {
	if !m.hasData {
		return ""
	}
	m.bar.Width = m.width
	if m.static {
		return m.bar.ViewAs(m.percent)
	}
	return m.bar.View()
}
