package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ivoronin/dockview/internal/types"
)

// SplitStats is the split fractions table component.
type SplitStats struct {
	snapshot *types.Snapshot
}

// NewSplitStats creates a new split stats component.
func NewSplitStats() *SplitStats { return &SplitStats{} }

// Update handles messages.
func (m *SplitStats) Update(teaMsg tea.Msg) tea.Cmd {
	if s, ok := teaMsg.(SnapshotMsg); ok {
		m.snapshot = s.Snapshot
	}
	return nil
}

// View renders the component.
func (m *SplitStats) View() string {
	if m.snapshot == nil {
		return ""
	}

	rows := make([][]string, len(m.snapshot.Splits))
	nameW := SplitsNameColW
	for i, s := range m.snapshot.Splits {
		nameW = max(nameW, len(s.Name)+SplitsColPadding)
		rows[i] = []string{
			s.Name,
			s.Axis.String(),
			formatPercent(s.Fraction),
			formatPercent(s.Min),
			formatPercent(s.Max),
			fmt.Sprintf("%.0f", s.Extent),
		}
	}
	numW := len("EXTENT") + SplitsColPadding
	colWidths := []int{nameW, numW, numW, numW, numW, numW}

	return table.New().
		Headers("SPLIT", "AXIS", "AT", "MIN", "MAX", "EXTENT").
		Rows(rows...).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false).BorderRow(false).BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(colWidths[col])
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return style.Inherit(TableHeaderStyle)
			}
			if col == 0 {
				return style.Inherit(TableLabelStyle)
			}
			return style
		}).
		Render()
}

func formatPercent(f float32) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
