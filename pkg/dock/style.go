// Package dock draws the split separators and tab headers of a docking panel
// layout on top of an immediate-mode surface.
package dock

import (
	"github.com/ivoronin/dockview/pkg/geom"
	"github.com/ivoronin/dockview/pkg/surface"
)

// Style specifies the look of dock panels, separators and tab headers.
// Use DefaultStyle, FromVisuals or NewStyle, then override fields as needed.
// Values are not validated; a negative width simply renders wrong.
type Style struct {
	Padding *geom.Margin

	BorderColor surface.Color
	BorderWidth float32

	// SelectionColor previews where a dragged tab will land.
	SelectionColor surface.Color

	SeparatorWidth float32
	// SeparatorExtra is how close the separator may get to either edge of a split.
	SeparatorExtra float32
	SeparatorColor surface.Color

	TabBarBackgroundColor surface.Color

	TabOutlineColor    surface.Color
	TabRounding        geom.Rounding
	TabBackgroundColor surface.Color

	TabTextColorUnfocused surface.Color
	TabTextColorFocused   surface.Color

	CloseTabColor           surface.Color
	CloseTabActiveColor     surface.Color
	CloseTabBackgroundColor surface.Color
	ShowCloseButtons        bool
}

const (
	// DefaultSeparatorWidth is the separator thickness in logical units.
	DefaultSeparatorWidth = 1
	// DefaultSeparatorExtra keeps each side of a split at least this wide.
	DefaultSeparatorExtra = 175
)

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		BorderColor:    surface.Black,
		SelectionColor: surface.RGB(0, 191, 255).MultiplyAlpha(0.5),

		SeparatorWidth: DefaultSeparatorWidth,
		SeparatorExtra: DefaultSeparatorExtra,
		SeparatorColor: surface.Black,

		TabBarBackgroundColor: surface.White,

		TabOutlineColor:    surface.Black,
		TabBackgroundColor: surface.White,

		TabTextColorUnfocused: surface.DarkGray,
		TabTextColorFocused:   surface.Black,

		CloseTabColor:           surface.White,
		CloseTabActiveColor:     surface.White,
		CloseTabBackgroundColor: surface.MidGray,
		ShowCloseButtons:        true,
	}
}

// FromVisuals derives the colors from a host theme; the remaining fields keep
// their defaults.
func FromVisuals(v surface.Visuals) Style {
	s := DefaultStyle()

	s.SelectionColor = v.SelectionBg.MultiplyAlpha(0.5)

	s.TabBarBackgroundColor = v.FaintBackground
	s.TabOutlineColor = v.ActiveWidgetFill
	s.TabBackgroundColor = v.WindowFill

	s.TabTextColorUnfocused = v.TextColor
	s.TabTextColorFocused = v.StrongTextColor

	s.SeparatorColor = v.ActiveWidgetFill
	s.BorderColor = v.ActiveWidgetFill

	s.CloseTabBackgroundColor = v.ActiveWidgetFill
	s.CloseTabColor = v.TextColor
	s.CloseTabActiveColor = v.StrongTextColor

	return s
}

// Option customizes a Style built by NewStyle.
type Option func(*Style)

// NewStyle applies opts over DefaultStyle.
func NewStyle(opts ...Option) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithPadding indents dock content from the window edges.
func WithPadding(m geom.Margin) Option { return func(s *Style) { s.Padding = &m } }

// WithBorder sets the working-area border.
func WithBorder(c surface.Color, width float32) Option {
	return func(s *Style) { s.BorderColor, s.BorderWidth = c, width }
}

// WithSelectionColor sets the drop-target preview color.
func WithSelectionColor(c surface.Color) Option { return func(s *Style) { s.SelectionColor = c } }

// WithSeparator sets separator width, edge margin and color.
func WithSeparator(width, extra float32, c surface.Color) Option {
	return func(s *Style) { s.SeparatorWidth, s.SeparatorExtra, s.SeparatorColor = width, extra, c }
}

// WithTabBarBackground sets the tab bar color.
func WithTabBarBackground(c surface.Color) Option {
	return func(s *Style) { s.TabBarBackgroundColor = c }
}

// WithTabOutlineColor sets the active tab outline color.
func WithTabOutlineColor(c surface.Color) Option { return func(s *Style) { s.TabOutlineColor = c } }

// WithTabRounding sets the tab corner rounding.
func WithTabRounding(r geom.Rounding) Option { return func(s *Style) { s.TabRounding = r } }

// WithTabBackgroundColor sets the active tab fill.
func WithTabBackgroundColor(c surface.Color) Option {
	return func(s *Style) { s.TabBackgroundColor = c }
}

// WithTabTextColors sets the focused and unfocused tab text colors.
func WithTabTextColors(focused, unfocused surface.Color) Option {
	return func(s *Style) { s.TabTextColorFocused, s.TabTextColorUnfocused = focused, unfocused }
}

// WithCloseTabColors sets the close glyph colors and its hover background.
func WithCloseTabColors(idle, active, background surface.Color) Option {
	return func(s *Style) {
		s.CloseTabColor, s.CloseTabActiveColor, s.CloseTabBackgroundColor = idle, active, background
	}
}

// WithCloseButtons shows or hides tab close buttons.
func WithCloseButtons(show bool) Option { return func(s *Style) { s.ShowCloseButtons = show } }
