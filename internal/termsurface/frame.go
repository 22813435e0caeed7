package termsurface

import (
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Output is the result of a finished frame.
type Output struct {
	Canvas  *Canvas
	Cursor  surface.CursorIcon
	Active  surface.ID
	Hovered surface.ID // last interactive region under the pointer
}

// Frame is one immediate-mode pass. It implements surface.Surface and
// surface.Painter.
type Frame struct {
	ctx     *Context
	input   Input
	canvas  *Canvas
	layout  geom.Pos2
	autoSeq int
	cursor  surface.CursorIcon
	hovered surface.ID
	clip    geom.Rect
}

var (
	_ surface.Surface = (*Frame)(nil)
	_ surface.Painter = (*Frame)(nil)
)

// Input returns the pointer input this frame was started with.
func (f *Frame) Input() Input { return f.input }

// Canvas returns the canvas being painted.
func (f *Frame) Canvas() *Canvas { return f.canvas }

// BeginRow moves the layout cursor used by AllocateSize.
func (f *Frame) BeginRow(origin geom.Pos2) { f.layout = origin }

// SetClip restricts painting and hit testing to clip until the next call.
func (f *Frame) SetClip(clip geom.Rect) {
	f.clip = clip
	if clip == geom.Everything() {
		f.canvas.ResetClip()
		return
	}
	x0, y0, x1, y1 := CellBounds(clip)
	f.canvas.SetClip(x0, y0, x1, y1)
}

// ResetClip removes the clip rectangle.
func (f *Frame) ResetClip() { f.SetClip(geom.Everything()) }

// End finishes the frame. A released pointer gives up its active region.
func (f *Frame) End() Output {
	if !f.input.Down {
		f.ctx.release()
	}
	return Output{
		Canvas:  f.canvas,
		Cursor:  f.cursor,
		Active:  f.ctx.active,
		Hovered: f.hovered,
	}
}

// PixelsPerPoint implements surface.Surface.
func (f *Frame) PixelsPerPoint() float32 { return PixelsPerPoint }

// LayoutText implements surface.Surface. Text is one row high unless a finite
// wrap width splits it into several rows.
func (f *Frame) LayoutText(label surface.WidgetText, _ surface.TextStyle, wrapWidth float32) surface.Galley {
	width := float32(runewidth.StringWidth(label.Text) * CellWidth)
	height := float32(CellHeight)
	if !math.IsInf(float64(wrapWidth), 1) && wrapWidth >= CellWidth && width > wrapWidth {
		perRow := float32(math.Floor(float64(wrapWidth/CellWidth))) * CellWidth
		rows := float32(math.Ceil(float64(width / perRow)))
		width, height = perRow, rows*CellHeight
	}
	return surface.Galley{Text: label.Text, Size: geom.V(width, height), Color: label.Color}
}

// AllocateRect implements surface.Surface.
func (f *Frame) AllocateRect(rect geom.Rect, sense surface.Sense) surface.Response {
	id := f.nextAutoID()
	return f.Interact(rect, id, sense)
}

// AllocateSize implements surface.Surface. Widths are rounded up to whole
// cells so consecutive allocations stay on the cell grid.
func (f *Frame) AllocateSize(desired geom.Vec2, sense surface.Sense) surface.Response {
	width := float32(math.Ceil(float64(desired.X/CellWidth))) * CellWidth
	rect := geom.RectFromMinSize(f.layout, geom.V(width, desired.Y))
	f.layout.X += width
	return f.AllocateRect(rect, sense)
}

func (f *Frame) nextAutoID() surface.ID {
	id := f.ctx.autoIDs.With(strconv.Itoa(f.autoSeq))
	f.autoSeq++
	return id
}

// Interact implements surface.Surface.
func (f *Frame) Interact(rect geom.Rect, id surface.ID, sense surface.Sense) surface.Response {
	in := f.input
	inside := in.HasPointer && rect.Contains(in.Pointer) && f.clip.Contains(in.Pointer)
	active := f.ctx.active

	if sense.Interactive() && in.Pressed && inside && active.IsZero() && !id.IsZero() {
		f.ctx.activate(id, sense)
		active = id
	}

	// A held click leaves hover alone so widgets that appear on hover stay
	// registered until the release. A drag owns the pointer.
	captured := !active.IsZero() && active != id && f.ctx.drags
	resp := surface.Response{
		ID:      id,
		Rect:    rect,
		Sense:   sense,
		Hovered: inside && !captured,
	}
	if resp.Hovered && sense.Interactive() {
		f.hovered = id
	}
	if active != id || id.IsZero() {
		return resp
	}

	resp.PointerDown = in.Down
	if sense.Drag && in.Down && !in.Pressed {
		resp.Dragged = true
		resp.DragDelta = in.Delta
	}
	if sense.Click && in.Released && inside {
		resp.Clicked = true
	}
	return resp
}

// SetHoverCursor implements surface.Surface. A dragged region keeps its
// cursor even when the pointer leaves it.
func (f *Frame) SetHoverCursor(resp surface.Response, icon surface.CursorIcon) {
	if resp.Hovered || resp.Dragged {
		f.cursor = icon
	}
}

// Painter implements surface.Surface.
func (f *Frame) Painter() surface.Painter { return f }

// RectFilled implements surface.Painter. Terminal cells cannot show rounded
// corners, so rounding is ignored.
func (f *Frame) RectFilled(rect geom.Rect, _ geom.Rounding, color surface.Color) {
	x0, y0, x1, y1, ok := f.cells(rect)
	if !ok {
		return
	}
	f.canvas.Fill(x0, y0, x1, y1, color)
}

// RectStroke implements surface.Painter with box drawing characters.
// Rounded rects get rounded corners.
func (f *Frame) RectStroke(rect geom.Rect, rounding geom.Rounding, stroke surface.Stroke) {
	x0, y0, x1, y1, ok := f.cells(rect)
	if !ok || stroke.Width <= 0 {
		return
	}
	c := stroke.Color
	lastX, lastY := x1-1, y1-1

	for x := x0; x <= lastX; x++ {
		f.canvas.Plot(x, y0, glyphHorizontal, c)
		f.canvas.Plot(x, lastY, glyphHorizontal, c)
	}
	if lastY == y0 {
		return
	}
	for y := y0; y <= lastY; y++ {
		f.canvas.Plot(x0, y, glyphVertical, c)
		f.canvas.Plot(lastX, y, glyphVertical, c)
	}
	if lastX == x0 {
		return
	}

	corners := [4]rune{'┌', '┐', '└', '┘'}
	if rounding != (geom.Rounding{}) {
		corners = [4]rune{'╭', '╮', '╰', '╯'}
	}
	f.canvas.Plot(x0, y0, corners[0], c)
	f.canvas.Plot(lastX, y0, corners[1], c)
	f.canvas.Plot(x0, lastY, corners[2], c)
	f.canvas.Plot(lastX, lastY, corners[3], c)
}

// LineSegment implements surface.Painter. The segment is sampled at the
// midpoints of about one cell long pieces, so a segment shorter than a cell
// lands in the single cell under its midpoint.
func (f *Frame) LineSegment(a, b geom.Pos2, stroke surface.Stroke) {
	if stroke.Width <= 0 {
		return
	}
	d := b.Sub(a)
	glyph := lineGlyph(d)

	cols := math.Abs(float64(d.X / CellWidth))
	rows := math.Abs(float64(d.Y / CellHeight))
	n := max(1, int(math.Round(max(cols, rows))))
	for i := range n {
		t := (float32(i) + 0.5) / float32(n)
		col, row := CellAt(a.Add(d.Scale(t)))
		f.canvas.Plot(col, row, glyph, stroke.Color)
	}
}

func lineGlyph(d geom.Vec2) rune {
	switch {
	case d.Y == 0:
		return glyphHorizontal
	case d.X == 0:
		return glyphVertical
	case (d.X > 0) == (d.Y > 0):
		return glyphDown
	default:
		return glyphUp
	}
}

// Text implements surface.Painter.
func (f *Frame) Text(pos geom.Pos2, galley surface.Galley, color surface.Color) {
	col, row := CellAt(pos)
	f.canvas.Text(col, row, f.canvas.Width(), galley.Text, color)
}

// CellBounds returns the cells [x0,x1)×[y0,y1) covered by rect. A cell is
// covered when its center lies inside rect.
func CellBounds(rect geom.Rect) (x0, y0, x1, y1 int) {
	const limit = 1 << 20
	if !rect.IsPositive() {
		return 0, 0, 0, 0
	}
	x0, x1 = cellSpan(rect.Min.X, rect.Max.X, CellWidth, limit)
	y0, y1 = cellSpan(rect.Min.Y, rect.Max.Y, CellHeight, limit)
	return x0, y0, x1, y1
}

// cells returns the cell span covered by rect, clipped to the canvas.
func (f *Frame) cells(rect geom.Rect) (x0, y0, x1, y1 int, ok bool) {
	if !rect.IsPositive() {
		return 0, 0, 0, 0, false
	}
	x0, x1 = cellSpan(rect.Min.X, rect.Max.X, CellWidth, f.canvas.Width())
	y0, y1 = cellSpan(rect.Min.Y, rect.Max.Y, CellHeight, f.canvas.Height())
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

// cellSpan returns the cells [a, b) whose centers lie in [lo, hi). A span too
// thin to hold any center covers the cell under its midpoint.
func cellSpan(lo, hi, cell float32, limit int) (a, b int) {
	lo, hi = max(lo, -cell), min(hi, float32(limit+1)*cell)
	a = int(math.Ceil(float64(lo/cell - 0.5)))
	b = int(math.Ceil(float64(hi/cell - 0.5)))
	if a >= b {
		a = floorDiv((lo+hi)/2, cell)
		b = a + 1
	}
	return max(a, 0), min(b, limit)
}
