package surface

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	DarkGray    = Gray(96)
	MidGray     = Gray(160)
	LightGray   = Gray(220)
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA creates a color with alpha.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Gray creates an opaque gray of the given level.
func Gray(l uint8) Color { return RGB(l, l, l) }

// MultiplyAlpha scales the alpha channel by f (0..1).
func (c Color) MultiplyAlpha(f float32) Color {
	c.A = uint8(min(255, max(0, float32(c.A)*f+0.5)))
	return c
}

// Colorful converts the color channels (alpha dropped) to a go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Over composites c onto an opaque background and returns the opaque result.
func (c Color) Over(bg Color) Color {
	if c.A == 255 {
		return c
	}
	blended := bg.Colorful().BlendRgb(c.Colorful(), float64(c.A)/255).Clamped()
	r, g, b := blended.RGB255()
	return RGB(r, g, b)
}

// Hex formats the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	h := c.Colorful().Hex()
	if c.A != 255 {
		h += fmt.Sprintf("%02x", c.A)
	}
	return h
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// ParseColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := parsed.RGB255()
	return RGBA(r, g, b, alpha), nil
}
