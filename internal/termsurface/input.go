package termsurface

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivoronin/dockview/pkg/geom"
)

// Cell metrics in logical units. One device pixel is one cell column, so
// PixelsPerPoint is 1/CellWidth.
const (
	CellWidth      = 8
	CellHeight     = 16
	PixelsPerPoint = 1.0 / CellWidth
)

// Input is the pointer state for one frame.
type Input struct {
	Pointer    geom.Pos2
	HasPointer bool
	Down       bool      // primary button held after this frame's event
	Pressed    bool      // primary button went down during this frame
	Released   bool      // primary button went up during this frame
	Delta      geom.Vec2 // pointer motion since the previous frame
}

// CellCenter returns the logical position of the center of cell col, row.
func CellCenter(col, row int) geom.Pos2 {
	return geom.P((float32(col)+0.5)*CellWidth, (float32(row)+0.5)*CellHeight)
}

// CellAt returns the cell containing the logical point p.
func CellAt(p geom.Pos2) (col, row int) {
	return floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight)
}

func floorDiv(v, cell float32) int {
	q := v / cell
	i := int(q)
	if float32(i) > q {
		i--
	}
	return i
}

// pointerState persists between frames.
type pointerState struct {
	pos     geom.Pos2
	present bool
	down    bool
}

// ApplyMouse advances the pointer state with one bubbletea mouse event and
// returns the input for the frame it produces. Wheel events move the
// pointer but never press.
func (p *pointerState) ApplyMouse(msg tea.MouseMsg) Input {
	pos := CellCenter(msg.X, msg.Y)
	in := Input{Pointer: pos, HasPointer: true}
	if p.present {
		in.Delta = pos.Sub(p.pos)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && !p.down {
			in.Pressed = true
			p.down = true
		}
	case tea.MouseActionRelease:
		// Terminals often report the release without a button.
		if p.down {
			in.Released = true
		}
		p.down = false
	}

	in.Down = p.down
	p.pos, p.present = pos, true
	return in
}

// Idle returns the input for a frame produced by a non-pointer event.
func (p *pointerState) Idle() Input {
	return Input{Pointer: p.pos, HasPointer: p.present, Down: p.down}
}
