package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keybindings for the TUI
type KeyMap struct {
	Quit               key.Binding
	NextTab            key.Binding
	PrevTab            key.Binding
	CloseTab           key.Binding
	FocusNext          key.Binding
	ToggleCloseButtons key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "close tab"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next panel"),
		),
		ToggleCloseButtons: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close buttons"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.CloseTab, k.FocusNext, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.CloseTab},
		{k.FocusNext, k.ToggleCloseButtons, k.Quit},
	}
}
