package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var welcomeTitleStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

// welcomeView is the body of the Welcome tab.
func welcomeView(width int) string {
	text := lipgloss.NewStyle().Width(max(1, width)).Render(strings.Join([]string{
		"Drag a separator to resize the panels next to it.",
		"Click a tab to show it, or its ╳ to close it.",
		"Click inside a panel to give it focus.",
		"",
		"Edit the style file to restyle the dock while it runs.",
	}, "\n"))
	return welcomeTitleStyle.Render("dockview") + "\n\n" + text
}

// keysView is the body of the Keys tab.
func keysView(h help.Model, keys help.KeyMap, width int) string {
	h.ShowAll = true
	h.Width = width
	return sectionTitleStyle.Width(max(1, width)).Render("Keys") + "\n" + h.View(keys)
}
