package termsurface

import (
	"github.com/ivoronin/dockview/pkg/dock"
	"github.com/ivoronin/dockview/pkg/surface"
)

// DarkVisuals is the dark terminal theme.
var DarkVisuals = surface.Visuals{
	Dark:             true,
	WindowFill:       surface.Gray(27),
	FaintBackground:  surface.Gray(18),
	SelectionBg:      surface.RGB(0, 92, 128),
	ActiveWidgetFill: surface.Gray(70),
	TextColor:        surface.Gray(150),
	StrongTextColor:  surface.White,
}

// LightVisuals is the light terminal theme.
var LightVisuals = surface.Visuals{
	WindowFill:       surface.Gray(248),
	FaintBackground:  surface.Gray(230),
	SelectionBg:      surface.RGB(144, 209, 255),
	ActiveWidgetFill: surface.Gray(165),
	TextColor:        surface.Gray(80),
	StrongTextColor:  surface.Black,
}

// VisualsFor returns the named theme. Anything but "light" is dark.
func VisualsFor(theme string) surface.Visuals {
	if theme == "light" {
		return LightVisuals
	}
	return DarkVisuals
}

// SeparatorExtra keeps ten columns or five rows on each side of a split.
const SeparatorExtra = 10 * CellWidth

// DockStyle derives a dock style from v sized for the cell grid: separators
// are one column wide.
func DockStyle(v surface.Visuals) dock.Style {
	s := dock.FromVisuals(v)
	s.SeparatorWidth = CellWidth
	s.SeparatorExtra = SeparatorExtra
	return s
}
