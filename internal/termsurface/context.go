// Package termsurface implements surface.Surface on a grid of terminal cells.
//
// A Context lives for the whole program and remembers which region owns the
// pointer. Each bubbletea update produces one Frame: the caller registers
// regions and paints into it, then calls End to get the finished canvas.
package termsurface

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Context holds interaction state that outlives a frame.
type Context struct {
	log     *slog.Logger
	pointer pointerState
	active  surface.ID
	// drags is set when the active region senses drag; only then does it
	// keep the pointer from hovering other regions.
	drags   bool
	autoIDs surface.ID
}

// NewContext creates a Context. A nil logger discards.
func NewContext(log *slog.Logger) *Context {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Context{
		log:     log,
		autoIDs: surface.IDFromName("termsurface/auto"),
	}
}

// ApplyMouse feeds one mouse event and returns the input for the next frame.
func (c *Context) ApplyMouse(msg tea.MouseMsg) Input {
	return c.pointer.ApplyMouse(msg)
}

// Idle returns the input for a frame without pointer activity.
func (c *Context) Idle() Input {
	return c.pointer.Idle()
}

// Active returns the id that currently owns the pointer, or NoID.
func (c *Context) Active() surface.ID {
	return c.active
}

// Begin starts a frame of cols×rows cells cleared to bg.
func (c *Context) Begin(in Input, cols, rows int, bg surface.Color) *Frame {
	return &Frame{
		ctx:    c,
		input:  in,
		canvas: NewCanvas(cols, rows, bg),
		clip:   geom.Everything(),
	}
}

func (c *Context) activate(id surface.ID, sense surface.Sense) {
	c.active, c.drags = id, sense.Drag
	c.log.Debug("pointer captured", "id", id, "drag", sense.Drag)
}

func (c *Context) release() {
	if c.active.IsZero() {
		return
	}
	c.log.Debug("pointer released", "id", c.active)
	c.active, c.drags = surface.NoID, false
}
