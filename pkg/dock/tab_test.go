package dock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

var testTabID = surface.IDFromName("tab/test")

func TestTabTitleDesiredSize(t *testing.T) {
	label := surface.Label("Files") // 5 runes * 7 = 35 wide, 13 high

	with := newFakeSurface()
	DefaultStyle().TabTitle(with, label, false, false, false, testTabID)

	style := DefaultStyle()
	style.ShowCloseButtons = false
	without := newFakeSurface()
	style.TabTitle(without, label, false, false, false, testTabID)

	require.Len(t, with.allocated, 1)
	require.Len(t, without.allocated, 1)

	withSize := with.allocated[0].Rect.Size()
	withoutSize := without.allocated[0].Rect.Size()

	require.Equal(t, float32(TabHeight), withSize.Y)
	require.Equal(t, float32(TabHeight), withoutSize.Y)
	require.InDelta(t, 35+2*8, withoutSize.X, 1e-4)
	require.InDelta(t, CloseGlyphSize(13)+5, withSize.X-withoutSize.X, 1e-4)
	require.Equal(t, surface.SenseHover, with.allocated[0].Sense)
	require.Equal(t, []surface.CursorIcon{surface.CursorPointingHand}, with.cursors)
}

func TestTabTitleCloseRegionPresence(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		hovered bool
		show    bool
		want    bool
	}{
		{name: "active", active: true, show: true, want: true},
		{name: "hovered", hovered: true, show: true, want: true},
		{name: "active and hovered", active: true, hovered: true, show: true, want: true},
		{name: "idle", show: true, want: false},
		{name: "active but disabled", active: true, show: false, want: false},
		{name: "hovered but disabled", hovered: true, show: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newFakeSurface()
			ui.headerHovered = tt.hovered
			ui.closeHovered = true
			ui.closeClicked = true
			style := DefaultStyle()
			style.ShowCloseButtons = tt.show

			res := style.TabTitle(ui, surface.Label("Files"), false, tt.active, false, testTabID)

			if !tt.want {
				require.Empty(t, ui.interacted)
				require.Empty(t, ui.paintsOf("line"))
				require.False(t, res.CloseHovered)
				require.False(t, res.CloseClicked)
				return
			}

			require.Len(t, ui.interacted, 1)
			closeRes := ui.interacted[0]
			require.Equal(t, testTabID, closeRes.ID)
			require.Equal(t, surface.SenseClick, closeRes.Sense)
			require.True(t, res.CloseHovered)
			require.True(t, res.CloseClicked)

			size := CloseGlyphSize(13)
			header := res.Header.Rect
			require.InDelta(t, header.Min.X+8+35+5, closeRes.Rect.Min.X, 1e-4)
			require.InDelta(t, size, closeRes.Rect.Width(), 1e-4)
			require.InDelta(t, size, closeRes.Rect.Height(), 1e-4)
			require.InDelta(t, header.Center().Y, closeRes.Rect.Center().Y, 1e-4)
			require.Len(t, ui.paintsOf("line"), 2)
		})
	}
}

func TestTabTitleBody(t *testing.T) {
	style := DefaultStyle()
	style.TabOutlineColor = surface.RGB(1, 2, 3)
	style.TabBackgroundColor = surface.RGB(4, 5, 6)
	style.TabRounding = geom.RoundingSame(3)

	t.Run("active", func(t *testing.T) {
		ui := newFakeSurface()
		ui.ppp = 2
		ui.origin = geom.P(100, 0)

		res := style.TabTitle(ui, surface.Label("Files"), false, true, false, testTabID)
		rect := res.Header.Rect

		fills := ui.paintsOf("fill")
		require.Len(t, fills, 2)
		require.Empty(t, ui.paintsOf("stroke"))

		outline := fills[0]
		require.Equal(t, style.TabOutlineColor, outline.color)
		require.Equal(t, style.TabRounding, outline.rounding)
		requireRectInDelta(t, geom.R(rect.Min.X-0.5, rect.Min.Y, rect.Max.X+0.5, rect.Max.Y), outline.rect)

		body := fills[1]
		require.Equal(t, style.TabBackgroundColor, body.color)
		requireRectInDelta(t, geom.R(rect.Min.X, rect.Min.Y+0.5, rect.Max.X, rect.Max.Y), body.rect)
	})

	t.Run("active while dragged", func(t *testing.T) {
		ui := newFakeSurface()

		res := style.TabTitle(ui, surface.Label("Files"), false, true, true, testTabID)

		require.Empty(t, ui.paintsOf("fill"))
		strokes := ui.paintsOf("stroke")
		require.Len(t, strokes, 1)
		require.Equal(t, res.Header.Rect, strokes[0].rect)
		require.Equal(t, surface.Stroke{Width: 1, Color: style.TabOutlineColor}, strokes[0].stroke)
	})

	t.Run("inactive", func(t *testing.T) {
		ui := newFakeSurface()
		ui.headerHovered = true

		style.TabTitle(ui, surface.Label("Files"), false, false, false, testTabID)

		require.Empty(t, ui.paintsOf("fill"))
		require.Empty(t, ui.paintsOf("stroke"))
	})
}

func TestTabTitleTextColor(t *testing.T) {
	style := DefaultStyle()
	explicit := surface.RGB(200, 10, 10)

	tests := []struct {
		name    string
		label   surface.WidgetText
		focused bool
		want    surface.Color
	}{
		{name: "focused", label: surface.Label("Files"), focused: true, want: style.TabTextColorFocused},
		{name: "unfocused", label: surface.Label("Files"), want: style.TabTextColorUnfocused},
		{name: "explicit color wins", label: surface.ColoredLabel("Files", explicit), focused: true, want: explicit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newFakeSurface()
			ui.origin = geom.P(40, 30)

			style.TabTitle(ui, tt.label, tt.focused, false, false, testTabID)

			texts := ui.paintsOf("text")
			require.Len(t, texts, 1)
			require.Equal(t, tt.want, texts[0].color)
			require.Equal(t, geom.P(48, 35), texts[0].a)
			require.Equal(t, "Files", texts[0].text)
		})
	}
}

func TestTabTitleCloseGlyph(t *testing.T) {
	style := DefaultStyle()
	style.CloseTabColor = surface.RGB(10, 10, 10)
	style.CloseTabActiveColor = surface.RGB(20, 20, 20)
	style.CloseTabBackgroundColor = surface.RGB(30, 30, 30)

	tests := []struct {
		name        string
		focused     bool
		pointerDown bool
		hovered     bool
		wantColor   surface.Color
	}{
		{name: "idle", wantColor: style.CloseTabColor},
		{name: "focused", focused: true, wantColor: style.CloseTabActiveColor},
		{name: "pressed", pointerDown: true, hovered: true, wantColor: style.CloseTabActiveColor},
		{name: "hovered", hovered: true, wantColor: style.CloseTabColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newFakeSurface()
			ui.closeHovered = tt.hovered
			ui.closePointerDown = tt.pointerDown

			style.TabTitle(ui, surface.Label("Files"), tt.focused, true, false, testTabID)
			closeRect := ui.interacted[0].Rect
			glyph := closeRect.Shrink(1.75)

			lines := ui.paintsOf("line")
			require.Len(t, lines, 2)
			require.Equal(t, glyph.LeftTop(), lines[0].a)
			require.Equal(t, glyph.RightBottom(), lines[0].b)
			require.Equal(t, glyph.RightTop(), lines[1].a)
			require.Equal(t, glyph.LeftBottom(), lines[1].b)
			for _, l := range lines {
				require.Equal(t, surface.Stroke{Width: 1, Color: tt.wantColor}, l.stroke)
			}

			var background []paintCall
			for _, f := range ui.paintsOf("fill") {
				if f.color == style.CloseTabBackgroundColor {
					background = append(background, f)
				}
			}
			if tt.hovered {
				require.Len(t, background, 1)
				require.Equal(t, closeRect, background[0].rect)
				require.Equal(t, geom.RoundingSame(2), background[0].rounding)
			} else {
				require.Empty(t, background)
			}
		})
	}
}

func requireRectInDelta(t *testing.T, want, got geom.Rect) {
	t.Helper()
	require.InDelta(t, want.Min.X, got.Min.X, 1e-4)
	require.InDelta(t, want.Min.Y, got.Min.Y, 1e-4)
	require.InDelta(t, want.Max.X, got.Max.X, 1e-4)
	require.InDelta(t, want.Max.Y, got.Max.Y, 1e-4)
}
