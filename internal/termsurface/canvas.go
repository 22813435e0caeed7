package termsurface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ivoronin/dockview/pkg/surface"
)

// Line glyphs. A cell hit by both diagonals becomes a cross.
const (
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphDown       = '╲'
	glyphUp         = '╱'
	glyphCross      = '╳'
	glyphWideTail   = 0 // second cell of a double-width rune
)

// Cell is one terminal cell. Colors are always opaque.
type Cell struct {
	Rune rune
	FG   surface.Color
	BG   surface.Color
}

// Canvas is a grid of cells painted back to front. Writes outside the clip
// rectangle are dropped.
type Canvas struct {
	width, height int
	cells         []Cell
	clip          [4]int // x0, y0, x1, y1
}

// NewCanvas creates a canvas cleared to bg.
func NewCanvas(width, height int, bg surface.Color) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	c.ResetClip()
	bg = bg.Over(surface.Black)
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: bg, BG: bg}
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// At returns the cell at x, y. Out of range reads return a zero cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// SetClip limits painting to the cells [x0,x1)×[y0,y1).
func (c *Canvas) SetClip(x0, y0, x1, y1 int) {
	c.clip = [4]int{max(x0, 0), max(y0, 0), min(x1, c.width), min(y1, c.height)}
}

// ResetClip allows painting anywhere on the canvas.
func (c *Canvas) ResetClip() {
	c.clip = [4]int{0, 0, c.width, c.height}
}

func (c *Canvas) cell(x, y int) *Cell {
	if x < c.clip[0] || y < c.clip[1] || x >= c.clip[2] || y >= c.clip[3] {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// Fill paints the cells in [x0,x1)×[y0,y1) with color, covering any glyphs.
func (c *Canvas) Fill(x0, y0, x1, y1 int, color surface.Color) {
	if color.A == 0 {
		return
	}
	for y := max(c.clip[1], y0); y < min(c.clip[3], y1); y++ {
		for x := max(c.clip[0], x0); x < min(c.clip[2], x1); x++ {
			cell := &c.cells[y*c.width+x]
			cell.BG = color.Over(cell.BG)
			cell.FG = cell.BG
			cell.Rune = ' '
		}
		c.clearTail(min(c.clip[2], x1), y)
	}
}

// SetRune draws r at x, y with a foreground color, keeping the background.
func (c *Canvas) SetRune(x, y int, r rune, fg surface.Color) {
	cell := c.cell(x, y)
	if cell == nil {
		return
	}
	if r != glyphWideTail {
		c.clearTail(x+1, y)
	}
	cell.Rune = r
	cell.FG = fg.Over(cell.BG)
}

// clearTail blanks the second half of a double-width rune whose first half
// was overwritten, so rows keep their width.
func (c *Canvas) clearTail(x, y int) {
	if !c.inside(x, y) {
		return
	}
	if tail := &c.cells[y*c.width+x]; tail.Rune == glyphWideTail {
		tail.Rune = ' '
	}
}

// Plot draws one line glyph, merging crossing diagonals.
func (c *Canvas) Plot(x, y int, glyph rune, fg surface.Color) {
	cell := c.cell(x, y)
	if cell == nil {
		return
	}
	if (cell.Rune == glyphDown && glyph == glyphUp) || (cell.Rune == glyphUp && glyph == glyphDown) {
		glyph = glyphCross
	}
	c.SetRune(x, y, glyph, fg)
}

// Text writes s starting at x, y and returns the number of cells used.
// Text is clipped at the clip edge and at maxX.
func (c *Canvas) Text(x, y, maxX int, s string, fg surface.Color) int {
	start := x
	maxX = min(maxX, c.clip[2])
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		c.SetRune(x, y, r, fg)
		if w == 2 {
			c.SetRune(x+1, y, glyphWideTail, fg)
		}
		x += w
	}
	return x - start
}

// Row returns row y as plain text.
func (c *Canvas) Row(y int) string {
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		if r := c.At(x, y).Rune; r != glyphWideTail {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render returns the canvas as newline-separated rows. When colored is set,
// runs of equally colored cells are styled with lipgloss.
func (c *Canvas) Render(colored bool) string {
	rows := make([]string, c.height)
	for y := range rows {
		if !colored {
			rows[y] = c.Row(y)
			continue
		}
		rows[y] = c.renderRow(y)
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) renderRow(y int) string {
	var out, run strings.Builder
	var runFG, runBG surface.Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(runFG.Hex())).
			Background(lipgloss.Color(runBG.Hex()))
		out.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for x := 0; x < c.width; x++ {
		cell := c.At(x, y)
		if cell.Rune == glyphWideTail {
			continue
		}
		if run.Len() > 0 && (cell.FG != runFG || cell.BG != runBG) {
			flush()
		}
		runFG, runBG = cell.FG, cell.BG
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
