package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/ivoronin/dockview/internal/types"
)

var (
	eventsWarningStyle = lipgloss.NewStyle().Foreground(ColorRed)
	eventsNormalStyle  = lipgloss.NewStyle().Foreground(ColorBlue)
)

// eventsTypeColW fits "Warning".
const eventsTypeColW = 7

// EventsTable is the events table component.
type EventsTable struct {
	width    int
	snapshot *types.Snapshot
}

// NewEventsTable creates a new events component.
func NewEventsTable() *EventsTable { return &EventsTable{} }

// SetWidth sets the component width.
func (m *EventsTable) SetWidth(w int) { m.width = w }

// Update handles messages.
func (m *EventsTable) Update(teaMsg tea.Msg) tea.Cmd {
	if t, ok := teaMsg.(SnapshotMsg); ok {
		m.snapshot = t.Snapshot
	}

	return nil
}

// View renders the component.
func (m *EventsTable) View() string {
	if m.snapshot == nil {
		return ""
	}

	title := m.buildEventsTitle()

	events := m.snapshot.Events.Clusters
	if len(events) == 0 {
		return title + "\n" + TableLabelStyle.Render("No events")
	}

	rows := formatEventRows(events, m.snapshot.SnapshotTime)

	// Calculate column widths
	reasonW, countW := EventsMinColW, len("COUNT")
	for _, r := range rows {
		reasonW = max(reasonW, len(r.reason))
		countW = max(countW, len(r.count))
	}

	msgW := max(EventsMinColW, m.width-eventsTypeColW-reasonW-countW-EventsLastColW-4*EventsColPadding)
	colWidths := []int{
		eventsTypeColW + EventsColPadding, reasonW + EventsColPadding,
		msgW + EventsColPadding, countW + EventsColPadding, EventsLastColW,
	}

	// Build table rows
	tableRows := make([][]string, len(rows))
	for i, r := range rows {
		tableRows[i] = []string{r.eventType, r.reason, ansi.Truncate(r.message, msgW, "…"), r.count, r.last}
	}

	tbl := table.New().
		Headers("TYPE", "REASON", "MESSAGE", "COUNT", "LAST").
		Rows(tableRows...).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false).BorderRow(false).BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(colWidths[col])
			if col >= 3 {
				style = style.Align(lipgloss.Right)
			}

			if row == table.HeaderRow {
				return style.Inherit(TableHeaderStyle)
			}

			return style
		}).
		Render()

	return title + "\n" + tbl
}

// HasWarnings reports whether any warning cluster is shown.
func (m *EventsTable) HasWarnings() bool {
	if m.snapshot == nil {
		return false
	}
	for _, c := range m.snapshot.Events.Clusters {
		if c.Type == types.EventWarning {
			return true
		}
	}
	return false
}

// buildEventsTitle creates the section title with event stats.
func (m *EventsTable) buildEventsTitle() string {
	totalEvents := 0
	for _, c := range m.snapshot.Events.Clusters {
		totalEvents += c.ExemplarCount
	}

	stats := fmt.Sprintf("TOTAL %d  IGNORED %d", totalEvents, m.snapshot.Events.IgnoredCount)
	titleContent := "Events" + lipgloss.PlaceHorizontal(max(0, m.width-lipgloss.Width("Events")), lipgloss.Right, stats)

	return sectionTitleStyle.Width(m.width).Render(titleContent)
}

// eventRow holds formatted data for a single event row.
type eventRow struct {
	eventType, reason, message, count, last string
}

// formatEventRows converts event clusters to formatted row data.
func formatEventRows(events []types.EventCluster, now time.Time) []eventRow {
	rows := make([]eventRow, len(events))

	for i, e := range events {
		rows[i] = eventRow{
			eventType: formatEventType(e.Type),
			reason:    e.Reason,
			message:   e.Message,
			count:     strconv.Itoa(e.ExemplarCount),
			last:      types.FormatDuration(max(0, now.Sub(e.LastSeen))),
		}
	}

	return rows
}

func formatEventType(t string) string {
	if t == types.EventWarning {
		return eventsWarningStyle.Render("Warning")
	}

	return eventsNormalStyle.Render("Normal")
}
