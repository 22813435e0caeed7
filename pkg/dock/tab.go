package dock

import (
	"math"

	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Tab header geometry in logical units.
const (
	TabHeight       = 24
	tabPaddingX     = 8
	tabTextInsetY   = 5
	closeTextGap    = 5
	closeGlyphRatio = 1.3
	closeGlyphInset = 1.75
	closeRounding   = 2
)

// TabResponse is the outcome of drawing one tab header.
type TabResponse struct {
	Header       surface.Response
	CloseHovered bool
	CloseClicked bool
}

// TabTitle draws a tab header for label and reports the header's response and
// the state of its close button. active means the tab is the one shown in its
// panel; focused means its panel holds input focus. id scopes the close
// button's hit region and must be stable across frames.
func (s Style) TabTitle(ui surface.Surface, label surface.WidgetText, focused, active, dragging bool, id surface.ID) TabResponse {
	px := 1 / ui.PixelsPerPoint()

	galley := ui.LayoutText(label, surface.TextStyleButton, float32(math.Inf(1)))
	textSize := galley.Size
	closeSize := CloseGlyphSize(textSize.Y)

	desired := geom.V(textSize.X+2*tabPaddingX, TabHeight)
	if s.ShowCloseButtons {
		desired.X += closeSize + closeTextGap
	}

	header := ui.AllocateSize(desired, surface.SenseHover)
	ui.SetHoverCursor(header, surface.CursorPointingHand)
	rect := header.Rect

	showClose := (active || header.Hovered) && s.ShowCloseButtons
	var closeRect geom.Rect
	var closeRes surface.Response
	if showClose {
		center := geom.P(
			rect.Min.X+tabPaddingX+textSize.X+closeTextGap+closeSize/2,
			rect.Min.Y+rect.Height()/2,
		)
		closeRect = geom.RectFromCenterSize(center, geom.V(closeSize, closeSize))
		closeRes = ui.Interact(closeRect, id, surface.SenseClick)
	}

	painter := ui.Painter()
	switch {
	case active && !dragging:
		tab := rect
		tab.Min.X -= px
		tab.Max.X += px
		painter.RectFilled(tab, s.TabRounding, s.TabOutlineColor)

		tab.Min.X += px
		tab.Max.X -= px
		tab.Min.Y += px
		painter.RectFilled(tab, s.TabRounding, s.TabBackgroundColor)
	case active && dragging:
		painter.RectStroke(rect, s.TabRounding, surface.Stroke{Width: 1, Color: s.TabOutlineColor})
	}

	textPos := rect.Shrink2(geom.V(tabPaddingX, tabTextInsetY)).Min
	painter.Text(textPos, galley, s.tabTextColor(galley, focused))

	if !showClose {
		return TabResponse{Header: header}
	}

	if closeRes.Hovered {
		painter.RectFilled(closeRect, geom.RoundingSame(closeRounding), s.CloseTabBackgroundColor)
	}
	glyph := closeRect.Shrink(closeGlyphInset)
	color := s.CloseTabColor
	if focused || closeRes.PointerDown {
		color = s.CloseTabActiveColor
	}
	stroke := surface.Stroke{Width: 1, Color: color}
	painter.LineSegment(glyph.LeftTop(), glyph.RightBottom(), stroke)
	painter.LineSegment(glyph.RightTop(), glyph.LeftBottom(), stroke)

	return TabResponse{
		Header:       header,
		CloseHovered: closeRes.Hovered,
		CloseClicked: closeRes.Clicked,
	}
}

// CloseGlyphSize is the side of the square close button for text of the given height.
func CloseGlyphSize(textHeight float32) float32 {
	return textHeight / closeGlyphRatio
}

// tabTextColor keeps an explicit label color and otherwise picks by focus.
func (s Style) tabTextColor(galley surface.Galley, focused bool) surface.Color {
	switch {
	case galley.Color != nil:
		return *galley.Color
	case focused:
		return s.TabTextColorFocused
	default:
		return s.TabTextColorUnfocused
	}
}
