package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivoronin/dockview/internal/config"
	"github.com/ivoronin/dockview/internal/eventlog"
	"github.com/ivoronin/dockview/internal/termsurface"
	"github.com/ivoronin/dockview/internal/types"
	"github.com/ivoronin/dockview/internal/workspace"
	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/geom"
)

// Options configures a Model.
type Options struct {
	Style  dock.Style
	Theme  string
	Source string // where Style came from, shown in the Style tab
	// Events receives interaction events. Nil creates a private log.
	Events *eventlog.Log
	// Reloads delivers style file changes. Nil disables reloading.
	Reloads <-chan config.Reload
	// Plain renders without colors or animation.
	Plain bool
	Log   *slog.Logger
}

// Model is the main bubbletea model for the TUI
type Model struct {
	width, height int
	quitting      bool
	plain         bool

	keys    KeyMap
	log     *slog.Logger
	start   time.Time
	source  string
	ctx     *termsurface.Context
	ws      *workspace.Workspace
	events  *eventlog.Log
	reloads <-chan config.Reload
	out     termsurface.Output

	eventsTab   *workspace.Tab
	styleInfo   *StyleInfo
	splitStats  *SplitStats
	eventsTable *EventsTable
	progressBar *ProgressBar
	statusbar   *Statusbar
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.Events == nil {
		opts.Events = eventlog.New(eventlog.DefaultConfig(), opts.Log)
	}

	keys := DefaultKeyMap()
	styleInfo := NewStyleInfo(opts.Theme, opts.Source)
	splitStats := NewSplitStats()
	eventsTable := NewEventsTable()
	keysHelp := help.New()

	eventsTab := workspace.NewTab("Events", func(cols, _ int) string {
		eventsTable.SetWidth(cols)
		return eventsTable.View()
	})
	root := workspace.Demo(
		[]*workspace.Tab{
			workspace.NewTab("Style", func(int, int) string { return styleInfo.View() }),
			workspace.NewTab("Splits", func(int, int) string { return splitStats.View() }),
		},
		[]*workspace.Tab{
			workspace.NewTab("Welcome", func(cols, _ int) string { return welcomeView(cols) }),
			workspace.NewTab("Keys", func(cols, _ int) string { return keysView(keysHelp, keys, cols) }),
		},
		[]*workspace.Tab{eventsTab},
	)

	return Model{
		plain:       opts.Plain,
		keys:        keys,
		log:         opts.Log,
		start:       time.Now(),
		source:      opts.Source,
		ctx:         termsurface.NewContext(opts.Log),
		ws:          workspace.New(root, opts.Style, opts.Events, opts.Log),
		events:      opts.Events,
		reloads:     opts.Reloads,
		eventsTab:   eventsTab,
		styleInfo:   styleInfo,
		splitStats:  splitStats,
		eventsTable: eventsTable,
		progressBar: NewProgressBar(opts.Plain),
		statusbar:   NewStatusbar(keys),
	}
}

// Workspace returns the dock the model draws.
func (m Model) Workspace() *workspace.Workspace { return m.ws }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForReload(m.reloads))
}

// Update implements tea.Model
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch t := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = t.Width, t.Height
		cmds = append(cmds, m.render(m.ctx.Idle()))

	case tea.KeyMsg:
		if key.Matches(t, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(t)
		cmds = append(cmds, m.render(m.ctx.Idle()))

	case tea.MouseMsg:
		t.Y -= StatusbarH + ProgressH
		cmds = append(cmds, m.render(m.ctx.ApplyMouse(t)))

	case ReloadMsg:
		m.applyReload(config.Reload(t))
		cmds = append(cmds, m.render(m.ctx.Idle()), waitForReload(m.reloads))

	case TickMsg:
		cmds = append(cmds, m.render(m.ctx.Idle()), tickCmd())

	case bubbleprogress.FrameMsg:
		cmds = append(cmds, m.progressBar.Update(t))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.ws.CycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.ws.CycleTab(-1)
	case key.Matches(msg, m.keys.CloseTab):
		m.ws.CloseActive()
	case key.Matches(msg, m.keys.FocusNext):
		m.ws.FocusNext()
	case key.Matches(msg, m.keys.ToggleCloseButtons):
		s := m.ws.Style()
		s.ShowCloseButtons = !s.ShowCloseButtons
		m.ws.SetStyle(s)
	}
}

func (m *Model) applyReload(r config.Reload) {
	if r.Err != nil {
		m.events.Record(types.EventWarning, types.ReasonStyleReloadFail, r.Err.Error())
		return
	}
	m.ws.SetStyle(r.Style)
	m.events.Record(types.EventNormal, types.ReasonStyleReloaded, "Reloaded style from "+m.source)
}

func (m *Model) dockRows() int {
	return m.height - StatusbarH - ProgressH
}

// render draws a frame with in and hands the resulting state to the
// components. A frame that recorded events is drawn again so the bodies
// reflect them.
func (m *Model) render(in termsurface.Input) tea.Cmd {
	rows := m.dockRows()
	if m.width <= 0 || rows <= 0 {
		return nil
	}

	total := m.events.Total()
	m.frame(in, rows)
	cmd := m.publish()
	if m.events.Total() != total {
		m.frame(m.ctx.Idle(), rows)
	}
	return cmd
}

func (m *Model) frame(in termsurface.Input, rows int) {
	style := m.ws.Style()
	f := m.ctx.Begin(in, m.width, rows, style.TabBackgroundColor)
	m.ws.Show(f, geom.R(0, 0, float32(m.width*termsurface.CellWidth), float32(rows*termsurface.CellHeight)))
	m.out = f.End()
}

func (m *Model) publish() tea.Cmd {
	msg := SnapshotMsg{Snapshot: m.snapshot()}
	cmd := tea.Batch(
		m.styleInfo.Update(msg),
		m.splitStats.Update(msg),
		m.eventsTable.Update(msg),
		m.progressBar.Update(msg),
		m.statusbar.Update(msg),
	)

	m.eventsTab.Color = nil
	if m.eventsTable.HasWarnings() {
		c := warningTabColor
		m.eventsTab.Color = &c
	}
	return cmd
}

func (m *Model) snapshot() *types.Snapshot {
	s := &types.Snapshot{
		Style:        m.ws.Style(),
		OpenTabs:     m.ws.OpenTabs(),
		Cursor:       m.out.Cursor.String(),
		Splits:       m.ws.Splits(),
		StartTime:    m.start,
		SnapshotTime: time.Now(),
		Events:       m.events.Summary(),
	}
	if leaf := m.ws.Focused(); leaf != nil {
		s.FocusedLeaf = leaf.Name
		if tab := leaf.ActiveTab(); tab != nil {
			s.ActiveTab = tab.Title
		}
	}
	return s
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout:
	// ┌─────────────────────────────┐
	// │         statusbar           │ StatusbarH
	// ┝━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┥ ProgressH (main split gauge)
	// │ explorer ┃ editor           │
	// │          ┣━━━━━━━━━━━━━━━━━━│ dock (flex)
	// │          ┃ output           │
	// └─────────────────────────────┘

	contentWidth := m.width - rowPaddingStyle.GetHorizontalFrameSize()
	m.statusbar.SetWidth(contentWidth)
	m.progressBar.SetWidth(contentWidth)

	rows := []string{
		rowPaddingStyle.Render(m.statusbar.View()),
		rowPaddingStyle.Render(m.progressBar.View()),
	}
	if m.out.Canvas != nil {
		rows = append(rows, m.out.Canvas.Render(!m.plain))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
