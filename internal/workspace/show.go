package workspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ivoronin/dockview/internal/termsurface"
	"github.com/ivoronin/dockview/internal/types"
	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

const emptyLeafText = "No open tabs"

// Show draws the whole tree into rect and applies the clicks of this frame.
func (w *Workspace) Show(ui Host, rect geom.Rect) {
	w.show(ui, w.root, rect)
	ui.ResetClip()
}

func (w *Workspace) show(ui Host, n Node, rect geom.Rect) {
	switch n := n.(type) {
	case *Split:
		w.showSplit(ui, n, rect)
	case *Leaf:
		w.showLeaf(ui, n, rect)
	}
}

func (w *Workspace) showSplit(ui Host, s *Split, rect geom.Rect) {
	s.extent = rect.Extent(s.Axis)
	s.lo, s.hi = 0, 1
	if s.extent > 0 {
		s.lo, s.hi = dock.SplitBounds(w.style.SeparatorExtra, s.extent)
	}
	s.Fraction = snapFraction(s, rect.MinAlong(s.Axis))

	// The previous sibling leaves its own clip behind.
	ui.SetClip(rect)
	before := s.Fraction
	first, separator, second := w.style.Split(ui, &s.Fraction, rect, s.Axis)
	if s.Fraction != before {
		w.events.Record(types.EventNormal, types.ReasonSplitResized,
			fmt.Sprintf("Resized split %s to %.0f%%", s.Name, s.Fraction*100))
	}

	ui.Painter().RectFilled(separator, geom.Rounding{}, w.style.SeparatorColor)

	w.show(ui, s.First, first)
	w.show(ui, s.Second, second)
}

func (w *Workspace) showLeaf(ui Host, leaf *Leaf, rect geom.Rect) {
	s := w.style
	p := ui.Painter()
	ui.SetClip(rect)

	bar := rect.Before(geom.AxisY, rect.Min.Y+dock.TabHeight)
	p.RectFilled(bar, geom.Rounding{}, s.TabBarBackgroundColor)

	closeAt, activateAt := -1, -1
	ui.BeginRow(bar.Min)
	for i, tab := range leaf.Tabs {
		active := i == leaf.Active
		focused := active && leaf == w.focused
		res := s.TabTitle(ui, tab.label(), focused, active, false, tab.id)
		header := ui.Interact(res.Header.Rect, tab.id.With("header"), surface.SenseClick)

		switch {
		case res.CloseClicked:
			closeAt = i
		case header.Clicked:
			activateAt = i
		}
	}

	body := rect.After(geom.AxisY, bar.Max.Y)
	clicked := ui.Interact(body, leaf.id, surface.SenseClick).Clicked
	p.RectFilled(body, geom.Rounding{}, s.TabBackgroundColor)

	content := body
	if s.Padding != nil {
		content = content.Inset(*s.Padding)
	}
	if s.BorderWidth > 0 {
		content = content.Shrink2(geom.V(termsurface.CellWidth, termsurface.CellHeight))
	}

	textColor := s.TabTextColorUnfocused
	if leaf == w.focused {
		textColor = s.TabTextColorFocused
	}
	switch tab := leaf.ActiveTab(); {
	case tab == nil:
		paintBody(ui, content, func(int, int) string { return emptyLeafText }, textColor)
	case tab.Body != nil:
		paintBody(ui, content, tab.Body, textColor)
	}

	if s.BorderWidth > 0 {
		p.RectStroke(body, geom.Rounding{}, surface.Stroke{Width: s.BorderWidth, Color: s.BorderColor})
	}

	switch {
	case closeAt >= 0:
		w.Close(leaf, closeAt)
	case activateAt >= 0:
		w.Activate(leaf, activateAt)
	case clicked:
		w.Focus(leaf)
	}
}

// snapFraction moves the separator midpoint onto the center of a cell so the
// separator's hit area and its painted cells coincide. The result stays
// within the clamp bounds; when no nearby cell center does, the fraction is
// left for Split to clamp.
func snapFraction(s *Split, origin float32) float32 {
	if s.extent <= 0 {
		return s.Fraction
	}
	cell := float32(termsurface.CellWidth)
	if s.Axis == geom.AxisY {
		cell = termsurface.CellHeight
	}

	mid := origin + s.extent*s.Fraction
	center := float32(math.Floor(float64(mid/cell)))*cell + cell/2
	for _, c := range []float32{center, center + cell, center - cell} {
		if f := (c - origin) / s.extent; f >= s.lo && f <= s.hi {
			return f
		}
	}
	return s.Fraction
}

// paintBody paints the body text line by line, one cell row per line.
func paintBody(ui Host, content geom.Rect, body Body, color surface.Color) {
	x0, y0, x1, y1 := termsurface.CellBounds(content)
	cols, rows := x1-x0, y1-y0
	if cols <= 0 || rows <= 0 {
		return
	}

	lines := strings.Split(ansi.Strip(body(cols, rows)), "\n")
	noWrap := float32(math.Inf(1))
	for i, line := range lines[:min(rows, len(lines))] {
		line = ansi.Truncate(strings.TrimRight(line, " "), cols, "…")
		galley := ui.LayoutText(surface.Label(line), surface.TextStyleMonospace, noWrap)
		ui.Painter().Text(termsurface.CellCenter(x0, y0+i), galley, color)
	}
}
