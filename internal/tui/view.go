package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(NewModel(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// Snapshot renders the TUI once at width×height cells, for output that is
// not a terminal.
func Snapshot(opts Options, width, height int) string {
	model, _ := NewModel(opts).Update(tea.WindowSizeMsg{Width: width, Height: height})
	m, _ := model.(Model)

	// The first frame publishes the state the tab bodies show.
	m.render(m.ctx.Idle())
	return m.View()
}
