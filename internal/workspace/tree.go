// Package workspace holds a fixed dock layout and draws it every frame with
// the dock split and tab header primitives.
//
// The layout never changes shape: splits can be resized, tabs can be
// activated and closed, and leaves can take focus.
package workspace

import (
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Body renders the content of a tab for an area of cols×rows cells.
// Styled output is allowed; escape sequences are stripped before painting.
type Body func(cols, rows int) string

// Node is a Split or a Leaf.
type Node interface {
	node()
}

// Tab is one tab of a leaf.
type Tab struct {
	Title string
	Color *surface.Color // overrides the tab text color when set
	Body  Body

	id surface.ID
}

// NewTab creates a tab.
func NewTab(title string, body Body) *Tab {
	return &Tab{Title: title, Body: body, id: surface.NewID()}
}

// ID returns the identity of the tab's close button.
func (t *Tab) ID() surface.ID { return t.id }

func (t *Tab) label() surface.WidgetText {
	return surface.WidgetText{Text: t.Title, Color: t.Color}
}

// Leaf is a panel with a tab bar.
type Leaf struct {
	Name   string
	Tabs   []*Tab
	Active int

	id surface.ID
}

// NewLeaf creates a leaf with the first tab active.
func NewLeaf(name string, tabs ...*Tab) *Leaf {
	return &Leaf{Name: name, Tabs: tabs, id: surface.NewID()}
}

func (*Leaf) node() {}

// ActiveTab returns the active tab, or nil when the leaf is empty.
func (l *Leaf) ActiveTab() *Tab {
	if l.Active < 0 || l.Active >= len(l.Tabs) {
		return nil
	}
	return l.Tabs[l.Active]
}

// Split divides its rect between two children along Axis.
type Split struct {
	Name     string
	Axis     geom.Axis
	Fraction float32
	First    Node
	Second   Node

	// Filled in by the last frame.
	lo, hi, extent float32
}

// NewSplit creates a split.
func NewSplit(name string, axis geom.Axis, fraction float32, first, second Node) *Split {
	return &Split{Name: name, Axis: axis, Fraction: fraction, First: first, Second: second}
}

func (*Split) node() {}

// Demo builds the default layout: an explorer column beside an editor
// stacked over an output panel.
func Demo(explorer, editor, output []*Tab) *Split {
	return NewSplit("main", geom.AxisX, 0.3,
		NewLeaf("explorer", explorer...),
		NewSplit("editor", geom.AxisY, 0.65,
			NewLeaf("editor", editor...),
			NewLeaf("output", output...),
		),
	)
}

// walk visits nodes depth first, first child before second.
func walk(n Node, visit func(Node)) {
	visit(n)
	if s, ok := n.(*Split); ok {
		walk(s.First, visit)
		walk(s.Second, visit)
	}
}
