package dock

import (
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// HSplit divides rect left/right at *fraction. See Split.
func (s Style) HSplit(ui surface.Surface, fraction *float32, rect geom.Rect) (first, separator, second geom.Rect) {
	return s.Split(ui, fraction, rect, geom.AxisX)
}

// VSplit divides rect top/bottom at *fraction. See Split.
func (s Style) VSplit(ui surface.Surface, fraction *float32, rect geom.Rect) (first, separator, second geom.Rect) {
	return s.Split(ui, fraction, rect, geom.AxisY)
}

// Split divides rect along axis into the region before the separator, the
// separator strip and the region after it. first is always the leading side:
// left of the separator for AxisX, above it for AxisY. The separator is
// registered as a draggable region; this frame's drag moves *fraction, which
// is then clamped so neither side gets closer than SeparatorExtra to the edge.
// Separator edges are snapped to device pixels.
func (s Style) Split(ui surface.Surface, fraction *float32, rect geom.Rect, axis geom.Axis) (first, separator, second geom.Rect) {
	ppp := ui.PixelsPerPoint()
	origin := rect.MinAlong(axis)
	extent := rect.Extent(axis)
	half := s.SeparatorWidth * 0.5

	midpoint := origin + extent*(*fraction)
	separator = rect.WithRange(axis, midpoint-half, midpoint+half)

	response := ui.AllocateRect(separator, surface.SenseClickAndDrag)
	ui.SetHoverCursor(response, resizeCursor(axis))

	if extent > 0 {
		lo, hi := SplitBounds(s.SeparatorExtra, extent)
		delta := response.DragDelta.Along(axis)
		*fraction = clamp(*fraction+delta/extent, lo, hi)
	}

	midpoint = origin + extent*(*fraction)
	separator = rect.WithRange(axis,
		geom.MapToPixel(midpoint-half, ppp),
		geom.MapToPixel(midpoint+half, ppp),
	)

	first = rect.Before(axis, separator.MinAlong(axis))
	second = rect.After(axis, separator.MaxAlong(axis))
	return first, separator, second
}

// SplitBounds returns the fraction range a split of the given extent is
// clamped to. When extra exceeds half the extent the two bounds cross and
// are swapped rather than rejected.
func SplitBounds(extra, extent float32) (lo, hi float32) {
	lo = min(extra/extent, 1)
	hi = 1 - lo
	return min(lo, hi), max(hi, lo)
}

func resizeCursor(axis geom.Axis) surface.CursorIcon {
	if axis == geom.AxisY {
		return surface.CursorResizeVertical
	}
	return surface.CursorResizeHorizontal
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
