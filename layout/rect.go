package layout

import (
	"github.com/asciiforge/forge/core"
)

// Rect is a rectangular screen region, top-left corner plus dimensions
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect from position and dimensions
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// FromCorners builds a Rect spanning two points; inverted corners collapse
// to zero size
func FromCorners(topLeft, bottomRight core.Vec2) Rect {
	return Rect{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  max(0, bottomRight.X-topLeft.X),
		Height: max(0, bottomRight.Y-topLeft.Y),
	}
}

// FromPosSize builds a Rect from a position and a size vector
func FromPosSize(pos, size core.Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Position returns the top-left corner
func (r Rect) Position() core.Vec2 {
	return core.V2(r.X, r.Y)
}

// Size returns the dimensions as a Vec2
func (r Rect) Size() core.Vec2 {
	return core.V2(r.Width, r.Height)
}

// BottomRight returns the corner one past the region
func (r Rect) BottomRight() core.Vec2 {
	return core.V2(r.X+r.Width, r.Y+r.Height)
}

// Center returns the midpoint
func (r Rect) Center() core.Vec2 {
	return core.V2(r.X+r.Width/2, r.Y+r.Height/2)
}

// Pad shrinks the rect inward by n on every side
func (r Rect) Pad(n int) Rect {
	return r.PadSides(n, n, n, n)
}

// PadSides shrinks the rect inward by a per-side amount
func (r Rect) PadSides(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}
