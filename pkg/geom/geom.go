// Package geom provides the logical-unit geometry shared by the dock primitives
// and the surfaces that host them.
package geom

import (
	"fmt"
	"math"
)

// Axis selects the direction a split divides along.
type Axis int

const (
	// AxisX divides left/right (a horizontal split).
	AxisX Axis = iota
	// AxisY divides top/bottom (a vertical split).
	AxisY
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == AxisY {
		return "vertical"
	}
	return "horizontal"
}

// Vec2 is a size or offset in logical units.
type Vec2 struct {
	X, Y float32
}

// Pos2 is a position in logical units.
type Pos2 struct {
	X, Y float32
}

// V creates a Vec2.
func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// P creates a Pos2.
func P(x, y float32) Pos2 { return Pos2{X: x, Y: y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*f.
func (v Vec2) Scale(f float32) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Along returns the component of v on the given axis.
func (v Vec2) Along(a Axis) float32 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

// Add returns p offset by v.
func (p Pos2) Add(v Vec2) Pos2 { return Pos2{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the offset from o to p.
func (p Pos2) Sub(o Pos2) Vec2 { return Vec2{X: p.X - o.X, Y: p.Y - o.Y} }

// Rect is an axis-aligned rectangle. Min is inclusive, Max exclusive.
// A rect with Max < Min on either axis is negative and contains nothing.
type Rect struct {
	Min, Max Pos2
}

// Nothing is the canonical empty rect.
var Nothing = Rect{
	Min: Pos2{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
	Max: Pos2{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
}

// RectFromMinSize creates a rect at origin with the given size.
func RectFromMinSize(origin Pos2, size Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// RectFromCenterSize creates a rect of the given size centered on c.
func RectFromCenterSize(c Pos2, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{
		Min: Pos2{X: c.X - half.X, Y: c.Y - half.Y},
		Max: Pos2{X: c.X + half.X, Y: c.Y + half.Y},
	}
}

// R creates a rect from min/max coordinates.
func R(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: Pos2{X: minX, Y: minY}, Max: Pos2{X: maxX, Y: maxY}}
}

// Width returns Max.X-Min.X.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns Max.Y-Min.Y.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns the rect size.
func (r Rect) Size() Vec2 { return Vec2{X: r.Width(), Y: r.Height()} }

// Center returns the rect center.
func (r Rect) Center() Pos2 {
	return Pos2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Extent returns the size along an axis.
func (r Rect) Extent(a Axis) float32 {
	if a == AxisY {
		return r.Height()
	}
	return r.Width()
}

// MinAlong returns the min coordinate along an axis.
func (r Rect) MinAlong(a Axis) float32 {
	if a == AxisY {
		return r.Min.Y
	}
	return r.Min.X
}

// MaxAlong returns the max coordinate along an axis.
func (r Rect) MaxAlong(a Axis) float32 {
	if a == AxisY {
		return r.Max.Y
	}
	return r.Max.X
}

// WithRange returns r with its span along a replaced by [lo, hi].
func (r Rect) WithRange(a Axis, lo, hi float32) Rect {
	if a == AxisY {
		r.Min.Y, r.Max.Y = lo, hi
	} else {
		r.Min.X, r.Max.X = lo, hi
	}
	return r
}

// IsPositive reports whether the rect has positive area.
func (r Rect) IsPositive() bool { return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and o. The result may be negative.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Pos2{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
}

// Before returns the part of r that lies before coordinate v along a.
func (r Rect) Before(a Axis, v float32) Rect {
	if a == AxisY {
		return r.Intersect(EverythingAbove(v))
	}
	return r.Intersect(EverythingLeftOf(v))
}

// After returns the part of r that lies after coordinate v along a.
func (r Rect) After(a Axis, v float32) Rect {
	if a == AxisY {
		return r.Intersect(EverythingBelow(v))
	}
	return r.Intersect(EverythingRightOf(v))
}

// Shrink insets every side by amount.
func (r Rect) Shrink(amount float32) Rect { return r.Shrink2(Vec2{X: amount, Y: amount}) }

// Shrink2 insets the left/right sides by amount.X and top/bottom by amount.Y.
func (r Rect) Shrink2(amount Vec2) Rect {
	return Rect{
		Min: Pos2{X: r.Min.X + amount.X, Y: r.Min.Y + amount.Y},
		Max: Pos2{X: r.Max.X - amount.X, Y: r.Max.Y - amount.Y},
	}
}

// Inset shrinks r by a margin.
func (r Rect) Inset(m Margin) Rect {
	return Rect{
		Min: Pos2{X: r.Min.X + m.Left, Y: r.Min.Y + m.Top},
		Max: Pos2{X: r.Max.X - m.Right, Y: r.Max.Y - m.Bottom},
	}
}

// Transpose swaps the x and y axes.
func (r Rect) Transpose() Rect {
	return Rect{Min: Pos2{X: r.Min.Y, Y: r.Min.X}, Max: Pos2{X: r.Max.Y, Y: r.Max.X}}
}

// LeftTop returns the top-left corner.
func (r Rect) LeftTop() Pos2 { return r.Min }

// RightTop returns the top-right corner.
func (r Rect) RightTop() Pos2 { return Pos2{X: r.Max.X, Y: r.Min.Y} }

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Pos2 { return Pos2{X: r.Min.X, Y: r.Max.Y} }

// RightBottom returns the bottom-right corner.
func (r Rect) RightBottom() Pos2 { return r.Max }

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f - %.1f,%.1f]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// EverythingLeftOf is the half-plane x < v.
func EverythingLeftOf(v float32) Rect {
	e := Everything()
	e.Max.X = v
	return e
}

// EverythingRightOf is the half-plane x >= v.
func EverythingRightOf(v float32) Rect {
	e := Everything()
	e.Min.X = v
	return e
}

// EverythingAbove is the half-plane y < v.
func EverythingAbove(v float32) Rect {
	e := Everything()
	e.Max.Y = v
	return e
}

// EverythingBelow is the half-plane y >= v.
func EverythingBelow(v float32) Rect {
	e := Everything()
	e.Min.Y = v
	return e
}

// Everything is the unbounded rect.
func Everything() Rect {
	inf := float32(math.Inf(1))
	return Rect{Min: Pos2{X: -inf, Y: -inf}, Max: Pos2{X: inf, Y: inf}}
}

// Margin is a per-side inset.
type Margin struct {
	Left, Right, Top, Bottom float32
}

// MarginSame creates a margin with the same inset on every side.
func MarginSame(v float32) Margin { return Margin{Left: v, Right: v, Top: v, Bottom: v} }

// Rounding holds corner radii.
type Rounding struct {
	NW, NE, SW, SE float32
}

// RoundingSame creates a rounding with the same radius on every corner.
func RoundingSame(r float32) Rounding { return Rounding{NW: r, NE: r, SW: r, SE: r} }

// MapToPixel snaps a logical coordinate to the nearest device pixel.
func MapToPixel(point, pixelsPerPoint float32) float32 {
	return float32(math.Round(float64(point*pixelsPerPoint))) / pixelsPerPoint
}
