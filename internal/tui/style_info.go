package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivoronin/dockview/internal/types"
	"github.com/ivoronin/dockview/pkg/surface"
)

var (
	infoLabelStyle = lipgloss.NewStyle().Foreground(ColorGray)
	infoOnStyle    = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	infoOffStyle   = lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
)

// StyleInfo shows the dock style in effect and where it came from.
type StyleInfo struct {
	theme    string
	source   string
	snapshot *types.Snapshot
}

// NewStyleInfo creates a new style info component.
func NewStyleInfo(theme, source string) *StyleInfo {
	return &StyleInfo{theme: theme, source: source}
}

// Update handles messages.
func (m *StyleInfo) Update(teaMsg tea.Msg) tea.Cmd {
	if s, ok := teaMsg.(SnapshotMsg); ok {
		m.snapshot = s.Snapshot
	}
	return nil
}

// View renders the component.
func (m *StyleInfo) View() string {
	if m.snapshot == nil {
		return ""
	}
	s := m.snapshot
	st := s.Style
	return strings.Join([]string{
		infoRow("Theme", m.theme),
		infoRow("Source", m.source),
		infoRow("Separator", fmt.Sprintf("%g wide, %g extra", st.SeparatorWidth, st.SeparatorExtra)),
		infoRow("Close", renderSwitch(st.ShowCloseButtons)),
		infoRow("Border", renderBorder(st.BorderWidth, st.BorderColor)),
		infoRow("Focus", s.FocusedLeaf+" / "+orDash(s.ActiveTab)),
		infoRow("Cursor", s.Cursor),
		infoRow("Started", fmt.Sprintf("%s (%s ago)", s.StartTime.Format("15:04:05"), types.FormatDuration(time.Since(s.StartTime)))),
	}, "\n")
}

func infoRow(label, value string) string {
	return infoLabelStyle.Render(label) + strings.Repeat(" ", max(0, InfoLabelColW-len(label))+InfoColPadding) + value
}

func renderSwitch(on bool) string {
	if on {
		return infoOnStyle.Render("shown")
	}
	return infoOffStyle.Render("hidden")
}

func renderBorder(width float32, c surface.Color) string {
	if width <= 0 {
		return "none"
	}
	return fmt.Sprintf("%g %s", width, c.Hex())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
