package dock

import (
	"unicode/utf8"

	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

type paintCall struct {
	kind     string // "fill", "stroke", "line", "text"
	rect     geom.Rect
	rounding geom.Rounding
	color    surface.Color
	stroke   surface.Stroke
	a, b     geom.Pos2
	text     string
}

// fakeSurface records every registration and paint call. Interaction state is
// scripted through its fields.
type fakeSurface struct {
	ppp        float32
	runeWidth  float32
	textHeight float32
	origin     geom.Pos2

	dragDelta geom.Vec2

	headerHovered    bool
	closeHovered     bool
	closeClicked     bool
	closePointerDown bool

	allocated  []surface.Response
	interacted []surface.Response
	cursors    []surface.CursorIcon
	paints     []paintCall
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{ppp: 1, runeWidth: 7, textHeight: 13}
}

func (f *fakeSurface) PixelsPerPoint() float32 { return f.ppp }

func (f *fakeSurface) LayoutText(label surface.WidgetText, _ surface.TextStyle, _ float32) surface.Galley {
	return surface.Galley{
		Text:  label.Text,
		Size:  geom.V(float32(utf8.RuneCountInString(label.Text))*f.runeWidth, f.textHeight),
		Color: label.Color,
	}
}

func (f *fakeSurface) AllocateRect(rect geom.Rect, sense surface.Sense) surface.Response {
	resp := surface.Response{Rect: rect, Sense: sense, DragDelta: f.dragDelta, Dragged: f.dragDelta != geom.Vec2{}}
	f.allocated = append(f.allocated, resp)
	return resp
}

func (f *fakeSurface) AllocateSize(desired geom.Vec2, sense surface.Sense) surface.Response {
	resp := surface.Response{
		Rect:    geom.RectFromMinSize(f.origin, desired),
		Sense:   sense,
		Hovered: f.headerHovered,
	}
	f.allocated = append(f.allocated, resp)
	return resp
}

func (f *fakeSurface) Interact(rect geom.Rect, id surface.ID, sense surface.Sense) surface.Response {
	resp := surface.Response{
		ID:          id,
		Rect:        rect,
		Sense:       sense,
		Hovered:     f.closeHovered,
		Clicked:     f.closeClicked,
		PointerDown: f.closePointerDown,
	}
	f.interacted = append(f.interacted, resp)
	return resp
}

func (f *fakeSurface) SetHoverCursor(_ surface.Response, icon surface.CursorIcon) {
	f.cursors = append(f.cursors, icon)
}

func (f *fakeSurface) Painter() surface.Painter { return f }

func (f *fakeSurface) RectFilled(rect geom.Rect, rounding geom.Rounding, color surface.Color) {
	f.paints = append(f.paints, paintCall{kind: "fill", rect: rect, rounding: rounding, color: color})
}

func (f *fakeSurface) RectStroke(rect geom.Rect, rounding geom.Rounding, stroke surface.Stroke) {
	f.paints = append(f.paints, paintCall{kind: "stroke", rect: rect, rounding: rounding, stroke: stroke})
}

func (f *fakeSurface) LineSegment(a, b geom.Pos2, stroke surface.Stroke) {
	f.paints = append(f.paints, paintCall{kind: "line", a: a, b: b, stroke: stroke})
}

func (f *fakeSurface) Text(pos geom.Pos2, galley surface.Galley, color surface.Color) {
	f.paints = append(f.paints, paintCall{kind: "text", a: pos, text: galley.Text, color: color})
}

func (f *fakeSurface) paintsOf(kind string) []paintCall {
	var out []paintCall
	for _, p := range f.paints {
		if p.kind == kind {
			out = append(out, p)
		}
	}
	return out
}
