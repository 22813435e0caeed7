package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivoronin/dockview/internal/config"
	"github.com/ivoronin/dockview/internal/types"
)

// SnapshotMsg delivers the dock state after a frame to the components.
type SnapshotMsg struct {
	Snapshot *types.Snapshot
}

// TickMsg triggers periodic UI updates (for "X ago" times).
type TickMsg time.Time

// ReloadMsg carries a reloaded style file.
type ReloadMsg config.Reload

// tickCmd returns a command for periodic refresh (every 1s for time displays).
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForReload blocks on the next style reload. A nil channel never reloads.
func waitForReload(reloads <-chan config.Reload) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return ReloadMsg(r)
	}
}
