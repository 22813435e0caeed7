// Package tui provides the terminal user interface components.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ivoronin/dockview/pkg/surface"
)

// Color constants used throughout the TUI.
const (
	ColorGray  = lipgloss.Color("#888888") // muted text, labels, headers
	ColorGreen = lipgloss.Color("#28D223") // accents
	ColorBlue  = lipgloss.Color("#0493F8") // normal events, gauge start
	ColorRed   = lipgloss.Color("#FF4444") // warnings
)

// warningTabColor is ColorRed for tab titles.
var warningTabColor = surface.RGB(0xFF, 0x44, 0x44)

// Shared table styles.
var (
	TableHeaderStyle = lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
	TableLabelStyle  = lipgloss.NewStyle().Foreground(ColorGray)
)

// Layout styles.
var (
	// rowPaddingStyle is horizontal padding for single-row components (statusbar, gauge).
	rowPaddingStyle = lipgloss.NewStyle().Padding(0, 1)

	// sectionTitleStyle is the base style for section titles with underline.
	// Use .Width(w).Render(title) to apply.
	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorGray)
)

// Layout constants.
const (
	// StatusbarH is the statusbar height.
	StatusbarH = 1
	// ProgressH is the split gauge height.
	ProgressH = 1

	// InfoLabelColW is the style info label column width.
	InfoLabelColW = 10
	// InfoColPadding is the style info column padding.
	InfoColPadding = 2

	// SplitsNameColW is the split stats name column width.
	SplitsNameColW = 8
	// SplitsColPadding is the split stats column padding.
	SplitsColPadding = 2

	// EventsMinColW is the minimum events table column width.
	EventsMinColW = 8
	// EventsLastColW is the events "last seen" column width.
	EventsLastColW = 8
	// EventsColPadding is the events table column padding.
	EventsColPadding = 2
)
