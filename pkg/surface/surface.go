// Package surface defines the immediate-mode drawing and interaction contract
// the dock primitives are written against. A host toolkit implements Surface
// once per frame; nothing here retains state between frames.
package surface

import "github.com/ivoronin/dockview/pkg/geom"

// Sense describes which pointer interactions a region listens for.
type Sense struct {
	Click bool
	Drag  bool
}

// Sense presets.
var (
	SenseHover        = Sense{}
	SenseClick        = Sense{Click: true}
	SenseDrag         = Sense{Drag: true}
	SenseClickAndDrag = Sense{Click: true, Drag: true}
)

// Interactive reports whether the sense claims pointer presses.
func (s Sense) Interactive() bool { return s.Click || s.Drag }

// CursorIcon is a pointer cursor hint.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorResizeHorizontal
	CursorResizeVertical
)

// String implements fmt.Stringer.
func (c CursorIcon) String() string {
	switch c {
	case CursorPointingHand:
		return "pointing-hand"
	case CursorResizeHorizontal:
		return "resize-horizontal"
	case CursorResizeVertical:
		return "resize-vertical"
	default:
		return "default"
	}
}

// TextStyle selects the host font role used to shape a label.
type TextStyle int

const (
	TextStyleBody TextStyle = iota
	TextStyleButton
	TextStyleMonospace
)

// WidgetText is a label plus an optional explicit color. When Color is nil
// the widget drawing it picks a color.
type WidgetText struct {
	Text  string
	Color *Color
}

// Label creates a WidgetText without an explicit color.
func Label(text string) WidgetText { return WidgetText{Text: text} }

// ColoredLabel creates a WidgetText with an explicit color.
func ColoredLabel(text string, c Color) WidgetText { return WidgetText{Text: text, Color: &c} }

// Galley is shaped text ready to paint.
type Galley struct {
	Text  string
	Size  geom.Vec2
	Color *Color // explicit color carried over from the label
}

// Stroke is a line width and color.
type Stroke struct {
	Width float32
	Color Color
}

// Response is the interaction state of one registered region for this frame.
type Response struct {
	ID          ID
	Rect        geom.Rect
	Sense       Sense
	Hovered     bool
	Clicked     bool
	PointerDown bool // a press started on this region and is still held
	Dragged     bool
	DragDelta   geom.Vec2
}

// Painter issues draw calls for the current frame.
type Painter interface {
	RectFilled(rect geom.Rect, rounding geom.Rounding, color Color)
	RectStroke(rect geom.Rect, rounding geom.Rounding, stroke Stroke)
	LineSegment(a, b geom.Pos2, stroke Stroke)
	Text(pos geom.Pos2, galley Galley, color Color)
}

// Surface is the per-frame drawing and interaction surface.
type Surface interface {
	// PixelsPerPoint is the number of device pixels per logical unit.
	PixelsPerPoint() float32
	// LayoutText shapes a label. A wrapWidth of +Inf disables wrapping.
	LayoutText(label WidgetText, style TextStyle, wrapWidth float32) Galley
	// AllocateRect registers an explicit rect under an automatic id.
	AllocateRect(rect geom.Rect, sense Sense) Response
	// AllocateSize takes space of the desired size from the current layout cursor.
	AllocateSize(desired geom.Vec2, sense Sense) Response
	// Interact registers rect under id without taking layout space.
	Interact(rect geom.Rect, id ID, sense Sense) Response
	// SetHoverCursor requests icon while resp is hovered.
	SetHoverCursor(resp Response, icon CursorIcon)
	Painter() Painter
}

// Visuals is the subset of a host toolkit's theme a dock style can derive from.
type Visuals struct {
	Dark             bool
	WindowFill       Color
	FaintBackground  Color
	SelectionBg      Color
	ActiveWidgetFill Color
	TextColor        Color
	StrongTextColor  Color
}
