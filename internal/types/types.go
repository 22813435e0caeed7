// Package types contains shared domain types used across the workspace, eventlog and tui packages.
package types //nolint:revive // types is a standard name for shared domain types

import (
	"fmt"
	"time"

	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/geom"
)

// Event types.
const (
	EventNormal  = "Normal"
	EventWarning = "Warning"
)

// Event reasons recorded by the workspace and the style watcher.
const (
	ReasonTabActivated    = "TabActivated"
	ReasonTabClosed       = "TabClosed"
	ReasonFocusChanged    = "FocusChanged"
	ReasonSplitResized    = "SplitResized"
	ReasonStyleReloaded   = "StyleReloaded"
	ReasonStyleReloadFail = "StyleReloadFailed"
)

// Event is a single interaction or host event.
type Event struct {
	Type    string
	Reason  string
	Message string
	Time    time.Time
}

// EventCluster represents similar events grouped together for display.
type EventCluster struct {
	Type          string    // EventNormal or EventWarning
	Reason        string    // e.g. "TabClosed", "SplitResized"
	Message       string    // template shared by the clustered messages
	ExemplarCount int       // Total events matching this template
	LastSeen      time.Time // Most recent occurrence in cluster
}

// Symbol returns a visual symbol for display based on event Type.
func (e EventCluster) Symbol() string {
	if e.Type == EventWarning {
		return "⚠"
	}
	return "ℹ"
}

// EventSummary is the result of event processing, ready for rendering.
type EventSummary struct {
	Clusters     []EventCluster // Event clusters ready for display
	IgnoredCount int            // Events filtered by ignore regex
}

// SplitState describes one split of the workspace after a frame.
type SplitState struct {
	Name     string
	Axis     geom.Axis
	Fraction float32
	Min, Max float32 // clamp bounds for the current extent
	Extent   float32
}

// Snapshot is the state of the dock after a frame, for the panes that
// describe it. It carries no references into the workspace.
type Snapshot struct {
	Style       dock.Style
	FocusedLeaf string
	ActiveTab   string
	OpenTabs    int
	Cursor      string
	Splits      []SplitState

	StartTime    time.Time
	SnapshotTime time.Time

	Events EventSummary
}

// FormatDuration formats duration with seconds precision.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		if m > 0 {
			if s > 0 {
				return fmt.Sprintf("%dh%dm%ds", h, m, s)
			}
			return fmt.Sprintf("%dh%dm", h, m)
		}
		if s > 0 {
			return fmt.Sprintf("%dh%ds", h, s)
		}
		return fmt.Sprintf("%dh", h)
	}

	if m > 0 {
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%ds", s)
}
