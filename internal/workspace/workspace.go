package workspace

import (
	"fmt"
	"log/slog"

	"github.com/ivoronin/dockview/internal/types"
	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Host is the per-frame surface a workspace is shown on.
type Host interface {
	surface.Surface
	// BeginRow moves the layout cursor used by AllocateSize.
	BeginRow(origin geom.Pos2)
	// SetClip restricts painting and hit testing.
	SetClip(clip geom.Rect)
	ResetClip()
}

// Recorder receives interaction events.
type Recorder interface {
	Record(eventType, reason, message string)
}

type discardRecorder struct{}

func (discardRecorder) Record(string, string, string) {}

// Workspace is a dock tree plus the focused leaf.
type Workspace struct {
	root    Node
	focused *Leaf
	style   dock.Style
	events  Recorder
	log     *slog.Logger
}

// New creates a workspace focused on its first leaf. Nil events and log
// discard.
func New(root Node, style dock.Style, events Recorder, log *slog.Logger) *Workspace {
	if events == nil {
		events = discardRecorder{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &Workspace{root: root, style: style, events: events, log: log}
	if leaves := w.Leaves(); len(leaves) > 0 {
		w.focused = leaves[0]
	}
	return w
}

// Style returns the style the workspace draws with.
func (w *Workspace) Style() dock.Style { return w.style }

// SetStyle replaces the style from the next frame on.
func (w *Workspace) SetStyle(s dock.Style) { w.style = s }

// Focused returns the focused leaf.
func (w *Workspace) Focused() *Leaf { return w.focused }

// Leaves returns the leaves in layout order.
func (w *Workspace) Leaves() []*Leaf {
	var leaves []*Leaf
	walk(w.root, func(n Node) {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
	})
	return leaves
}

// Leaf returns the leaf with the given name, or nil.
func (w *Workspace) Leaf(name string) *Leaf {
	for _, l := range w.Leaves() {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Splits returns the split states from the last frame in layout order.
func (w *Workspace) Splits() []types.SplitState {
	var states []types.SplitState
	walk(w.root, func(n Node) {
		if s, ok := n.(*Split); ok {
			states = append(states, types.SplitState{
				Name:     s.Name,
				Axis:     s.Axis,
				Fraction: s.Fraction,
				Min:      s.lo,
				Max:      s.hi,
				Extent:   s.extent,
			})
		}
	})
	return states
}

// OpenTabs counts the tabs of every leaf.
func (w *Workspace) OpenTabs() int {
	n := 0
	for _, l := range w.Leaves() {
		n += len(l.Tabs)
	}
	return n
}

// Focus moves keyboard focus to leaf.
func (w *Workspace) Focus(leaf *Leaf) {
	if leaf == nil || leaf == w.focused {
		return
	}
	w.focused = leaf
	w.log.Debug("focus moved", "leaf", leaf.Name)
	w.events.Record(types.EventNormal, types.ReasonFocusChanged, "Focused leaf "+leaf.Name)
}

// FocusNext moves focus to the next leaf, wrapping around.
func (w *Workspace) FocusNext() {
	leaves := w.Leaves()
	if len(leaves) == 0 {
		return
	}
	next := 0
	for i, l := range leaves {
		if l == w.focused {
			next = (i + 1) % len(leaves)
			break
		}
	}
	w.Focus(leaves[next])
}

// Activate makes tab i of leaf active and focuses the leaf.
func (w *Workspace) Activate(leaf *Leaf, i int) {
	if i < 0 || i >= len(leaf.Tabs) {
		return
	}
	leaf.Active = i
	w.Focus(leaf)
	w.events.Record(types.EventNormal, types.ReasonTabActivated,
		fmt.Sprintf("Activated tab %s in %s", leaf.Tabs[i].Title, leaf.Name))
}

// CycleTab activates the tab delta positions away in the focused leaf.
func (w *Workspace) CycleTab(delta int) {
	leaf := w.focused
	if leaf == nil || len(leaf.Tabs) == 0 {
		return
	}
	n := len(leaf.Tabs)
	w.Activate(leaf, ((leaf.Active+delta)%n+n)%n)
}

// Close removes tab i from leaf. The tab to its left becomes active when
// the active tab is closed.
func (w *Workspace) Close(leaf *Leaf, i int) {
	if i < 0 || i >= len(leaf.Tabs) {
		return
	}
	tab := leaf.Tabs[i]
	leaf.Tabs = append(leaf.Tabs[:i:i], leaf.Tabs[i+1:]...)
	switch {
	case i < leaf.Active:
		leaf.Active--
	case i == leaf.Active:
		leaf.Active = max(0, i-1)
	}

	w.log.Info("tab closed", "leaf", leaf.Name, "tab", tab.Title)
	w.events.Record(types.EventNormal, types.ReasonTabClosed,
		fmt.Sprintf("Closed tab %s in %s", tab.Title, leaf.Name))
}

// CloseActive closes the active tab of the focused leaf.
func (w *Workspace) CloseActive() {
	if leaf := w.focused; leaf != nil {
		w.Close(leaf, leaf.Active)
	}
}
