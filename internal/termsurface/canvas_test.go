package termsurface

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivoronin/dockview/pkg/surface"
)

func TestCanvasRenderPlain(t *testing.T) {
	c := NewCanvas(4, 2, surface.Black)
	c.Text(0, 0, 4, "ab", surface.White)
	c.Text(1, 1, 4, "日本", surface.White)

	require.Equal(t, "ab  \n 日 ", c.Render(false))
}

func TestCanvasTextClips(t *testing.T) {
	c := NewCanvas(5, 1, surface.Black)

	n := c.Text(2, 0, 4, "hello", surface.White)

	require.Equal(t, 2, n)
	require.Equal(t, "  he ", c.Row(0))
}

func TestCanvasFillBlends(t *testing.T) {
	c := NewCanvas(2, 1, surface.Black)
	c.Text(0, 0, 2, "x", surface.White)

	c.Fill(0, 0, 1, 1, surface.RGBA(255, 255, 255, 128))

	cell := c.At(0, 0)
	require.Equal(t, ' ', cell.Rune, "fills cover glyphs")
	require.InDelta(t, 128, int(cell.BG.R), 1)
	require.Equal(t, uint8(255), cell.BG.A)

	c.Fill(1, 0, 2, 1, surface.Transparent)
	require.Equal(t, surface.Black, c.At(1, 0).BG)
}

func TestCanvasRenderColoredKeepsText(t *testing.T) {
	c := NewCanvas(3, 1, surface.Black)
	c.Text(0, 0, 3, "abc", surface.White)

	require.Contains(t, c.Render(true), "abc")
}

func TestCanvasOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1, surface.Black)

	c.SetRune(5, 5, 'x', surface.White)
	c.Fill(-3, -3, 10, 10, surface.White)

	require.Equal(t, Cell{}, c.At(-1, 0))
	require.Equal(t, surface.White, c.At(0, 0).BG)
}

func TestCanvasOverwriteWideRune(t *testing.T) {
	c := NewCanvas(4, 1, surface.Black)
	c.Text(0, 0, 4, "日本", surface.White)

	c.SetRune(0, 0, 'x', surface.White)
	require.Equal(t, "x 本", c.Row(0))
	require.Equal(t, "x 本", c.Render(false))

	c.Fill(2, 0, 3, 1, surface.White)
	require.Equal(t, "x   ", c.Row(0))
}
