package workspace

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ivoronin/dockview/internal/termsurface"
	"github.com/ivoronin/dockview/internal/types"
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

const (
	testCols = 100
	testRows = 20
)

type recorded struct {
	eventType, reason, message string
}

type recorder struct {
	events []recorded
}

func (r *recorder) Record(eventType, reason, message string) {
	r.events = append(r.events, recorded{eventType, reason, message})
}

func (r *recorder) reasons() []string {
	var out []string
	for _, e := range r.events {
		out = append(out, e.reason)
	}
	return out
}

func text(s string) Body {
	return func(int, int) string { return s }
}

func tabs(titles ...string) []*Tab {
	out := make([]*Tab, len(titles))
	for i, title := range titles {
		out[i] = NewTab(title, text(title+" body"))
	}
	return out
}

func newTestWorkspace(t *testing.T) (*Workspace, *recorder) {
	t.Helper()
	explorer := []*Tab{
		NewTab("Style", text("hello\nworld")),
		NewTab("Splits", text("splits")),
	}
	rec := &recorder{}
	root := Demo(explorer, tabs("Main"), tabs("Log"))
	return New(root, termsurface.DockStyle(termsurface.DarkVisuals), rec, nil), rec
}

// harness drives frames of a workspace through a terminal context.
type harness struct {
	ctx *termsurface.Context
	ws  *Workspace
}

func (h harness) frame(in termsurface.Input) termsurface.Output {
	f := h.ctx.Begin(in, testCols, testRows, h.ws.Style().TabBackgroundColor)
	h.ws.Show(f, geom.R(0, 0, testCols*termsurface.CellWidth, testRows*termsurface.CellHeight))
	return f.End()
}

func (h harness) idle() termsurface.Output { return h.frame(h.ctx.Idle()) }

func (h harness) mouse(msg tea.MouseMsg) termsurface.Output {
	return h.frame(h.ctx.ApplyMouse(msg))
}

func (h harness) click(col, row int) termsurface.Output {
	h.mouse(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return h.mouse(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease})
}

func titles(l *Leaf) []string {
	var out []string
	for _, tab := range l.Tabs {
		out = append(out, tab.Title)
	}
	return out
}

func TestNewFocusesFirstLeaf(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	require.Equal(t, "explorer", ws.Focused().Name)
	require.Len(t, ws.Leaves(), 3)
	require.Equal(t, 4, ws.OpenTabs())
	require.Nil(t, ws.Leaf("missing"))
}

func TestClose(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		close      int
		wantTitles []string
		wantActive int
	}{
		{name: "active middle tab", active: 1, close: 1, wantTitles: []string{"a", "c"}, wantActive: 0},
		{name: "active first tab", active: 0, close: 0, wantTitles: []string{"b", "c"}, wantActive: 0},
		{name: "tab left of active", active: 2, close: 0, wantTitles: []string{"b", "c"}, wantActive: 1},
		{name: "tab right of active", active: 0, close: 2, wantTitles: []string{"a", "b"}, wantActive: 0},
		{name: "out of range", active: 1, close: 5, wantTitles: []string{"a", "b", "c"}, wantActive: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := NewLeaf("l", tabs("a", "b", "c")...)
			leaf.Active = tt.active
			ws := New(leaf, termsurface.DockStyle(termsurface.DarkVisuals), nil, nil)

			ws.Close(leaf, tt.close)
			require.Equal(t, tt.wantTitles, titles(leaf))
			require.Equal(t, tt.wantActive, leaf.Active)
		})
	}
}

func TestCloseLastTabLeavesEmptyLeaf(t *testing.T) {
	leaf := NewLeaf("l", tabs("only")...)
	rec := &recorder{}
	ws := New(leaf, termsurface.DockStyle(termsurface.DarkVisuals), rec, nil)

	ws.CloseActive()
	require.Empty(t, leaf.Tabs)
	require.Nil(t, leaf.ActiveTab())
	require.Equal(t, []recorded{{types.EventNormal, types.ReasonTabClosed, "Closed tab only in l"}}, rec.events)

	ws.CloseActive()
	require.Len(t, rec.events, 1)
}

func TestCycleTabWraps(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	explorer := ws.Leaf("explorer")

	ws.CycleTab(1)
	require.Equal(t, 1, explorer.Active)
	ws.CycleTab(1)
	require.Equal(t, 0, explorer.Active)
	ws.CycleTab(-1)
	require.Equal(t, 1, explorer.Active)

	require.Equal(t, "Activated tab Splits in explorer", rec.events[0].message)
}

func TestFocusNextWraps(t *testing.T) {
	ws, rec := newTestWorkspace(t)

	var names []string
	for range 3 {
		ws.FocusNext()
		names = append(names, ws.Focused().Name)
	}
	require.Equal(t, []string{"editor", "output", "explorer"}, names)
	require.Equal(t, []string{
		types.ReasonFocusChanged, types.ReasonFocusChanged, types.ReasonFocusChanged,
	}, rec.reasons())

	ws.Focus(ws.Focused())
	require.Len(t, rec.events, 3)
}

func TestActivateOtherLeafMovesFocus(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	output := ws.Leaf("output")

	ws.Activate(output, 0)
	require.Same(t, output, ws.Focused())
	require.Equal(t, []string{types.ReasonFocusChanged, types.ReasonTabActivated}, rec.reasons())

	ws.Activate(output, 3)
	require.Len(t, rec.events, 2)
}

func TestShowPaintsLayout(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}

	out := h.idle()
	c := out.Canvas

	row0 := c.Row(0)
	require.True(t, strings.HasPrefix(row0, " Style ╳   Splits"), row0)
	require.Equal(t, "Main", strings.TrimSpace(row0[strings.Index(row0, "Splits")+len("Splits"):])[:4])

	require.True(t, strings.HasPrefix(c.Row(1), "hello"))
	require.True(t, strings.HasPrefix(c.Row(2), "world"))

	sep := ws.Style().SeparatorColor
	for row := range testRows {
		require.Equal(t, sep, c.At(30, row).BG, "row %d", row)
	}
	require.Equal(t, sep, c.At(50, 13).BG)
	require.Contains(t, c.Row(14), "Log")

	splits := ws.Splits()
	require.Len(t, splits, 2)
	require.Equal(t, "main", splits[0].Name)
	require.InDelta(t, 0.305, splits[0].Fraction, 1e-4)
	require.InDelta(t, 0.1, splits[0].Min, 1e-6)
	require.InDelta(t, 0.9, splits[0].Max, 1e-6)
	require.InDelta(t, 800, splits[0].Extent, 1e-6)
	require.Equal(t, "editor", splits[1].Name)
	require.InDelta(t, 0.675, splits[1].Fraction, 1e-4)

	require.Empty(t, rec.events)
}

func TestShowEmptyLeaf(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}

	ws.Close(ws.Leaf("output"), 0)
	out := h.idle()
	require.Contains(t, out.Canvas.Row(15), emptyLeafText)
}

func TestClickCloseGlyph(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	h.click(7, 0)
	explorer := ws.Leaf("explorer")
	require.Equal(t, []string{"Splits"}, titles(explorer))
	require.Equal(t, []string{types.ReasonTabClosed}, rec.reasons())
	require.Equal(t, "Closed tab Style in explorer", rec.events[0].message)

	out := h.idle()
	require.True(t, strings.HasPrefix(out.Canvas.Row(1), "splits"))
}

func TestClickCloseGlyphOfInactiveTab(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	out := h.mouse(tea.MouseMsg{X: 18, Y: 0, Action: tea.MouseActionMotion})
	require.Equal(t, '╳', out.Canvas.At(18, 0).Rune)

	h.click(18, 0)
	explorer := ws.Leaf("explorer")
	require.Equal(t, []string{"Style"}, titles(explorer))
	require.Equal(t, 0, explorer.Active)
	require.Equal(t, []string{types.ReasonTabClosed}, rec.reasons())
	require.Equal(t, "Closed tab Splits in explorer", rec.events[0].message)
}

func TestClickTabHeaderActivates(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	h.click(12, 0)
	require.Equal(t, 1, ws.Leaf("explorer").Active)
	require.Equal(t, []string{types.ReasonTabActivated}, rec.reasons())
	require.Len(t, ws.Leaf("explorer").Tabs, 2)
}

func TestClickBodyFocuses(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	h.click(40, 3)
	require.Equal(t, "editor", ws.Focused().Name)
	require.Equal(t, []string{types.ReasonFocusChanged}, rec.reasons())
}

func TestDragSeparator(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	out := h.mouse(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, surface.CursorResizeHorizontal, out.Cursor)
	require.False(t, out.Active.IsZero())

	out = h.mouse(tea.MouseMsg{X: 35, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.Equal(t, surface.CursorResizeHorizontal, out.Cursor)
	require.InDelta(t, 0.355, ws.Splits()[0].Fraction, 1e-4)
	require.Equal(t, ws.Style().SeparatorColor, out.Canvas.At(35, 5).BG)

	out = h.mouse(tea.MouseMsg{X: 35, Y: 5, Action: tea.MouseActionRelease})
	require.True(t, out.Active.IsZero())

	require.Equal(t, []string{types.ReasonSplitResized}, rec.reasons())
	require.Equal(t, "explorer", ws.Focused().Name)
}

func TestDragNestedSeparator(t *testing.T) {
	ws, rec := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	out := h.mouse(tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, surface.CursorResizeVertical, out.Cursor)
	require.False(t, out.Active.IsZero())

	out = h.mouse(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.Equal(t, surface.CursorResizeVertical, out.Cursor)
	require.InDelta(t, 0.525, ws.Splits()[1].Fraction, 1e-4)
	require.Equal(t, ws.Style().SeparatorColor, out.Canvas.At(50, 10).BG)

	out = h.mouse(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionRelease})
	require.True(t, out.Active.IsZero())

	require.InDelta(t, 0.305, ws.Splits()[0].Fraction, 1e-4)
	require.Equal(t, []string{types.ReasonSplitResized}, rec.reasons())
	require.Equal(t, "explorer", ws.Focused().Name)
}

func TestDragSeparatorIsClamped(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	h := harness{ctx: termsurface.NewContext(nil), ws: ws}
	h.idle()

	h.mouse(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.mouse(tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.InDelta(t, 0.1, ws.Splits()[0].Fraction, 1e-6)

	h.mouse(tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionRelease})
	h.idle()
	require.GreaterOrEqual(t, ws.Splits()[0].Fraction, float32(0.1))
	require.LessOrEqual(t, ws.Splits()[0].Fraction, float32(0.9))
}

func TestSnapFraction(t *testing.T) {
	s := &Split{Axis: geom.AxisX, Fraction: 0.3, extent: 800, lo: 0.1, hi: 0.9}
	require.InDelta(t, 0.305, snapFraction(s, 0), 1e-6)

	s = &Split{Axis: geom.AxisY, Fraction: 0.65, extent: 320, lo: 0.25, hi: 0.75}
	require.InDelta(t, 0.675, snapFraction(s, 0), 1e-6)

	s = &Split{Axis: geom.AxisX, Fraction: 0.1, extent: 800, lo: 0.1, hi: 0.9}
	require.InDelta(t, 0.105, snapFraction(s, 0), 1e-6)

	s = &Split{Axis: geom.AxisX, Fraction: 0.5, extent: 0}
	require.InDelta(t, 0.5, snapFraction(s, 0), 1e-6)
}
