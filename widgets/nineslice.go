package widgets

import (
	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// NineSlice fills a rectangle from a 3x3 cell set in row-major order:
// four corners, four stretched edges, and a repeated center.
type NineSlice struct {
	Cells [9]render.Cell
	Size  core.Vec2
}

// NewNineSlice builds a NineSlice from cells in row-major order
func NewNineSlice(cells [9]render.Cell, size core.Vec2) NineSlice {
	return NineSlice{Cells: cells, Size: size}
}

// Draw implements render.Element, returning the inner origin at+(1,1)
func (n NineSlice) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if n.Size.X < 1 || n.Size.Y < 1 {
		return at
	}

	w, h := n.Size.X-1, n.Size.Y-1
	top, bottom := at.Y, at.Y+h
	left, right := at.X, at.X+w

	for x := at.X + 1; x < at.X+w; x++ {
		dst.Set(core.V2(x, top), n.Cells[1])
		dst.Set(core.V2(x, bottom), n.Cells[7])
		for y := at.Y + 1; y < at.Y+h; y++ {
			dst.Set(core.V2(x, y), n.Cells[4])
		}
	}

	for y := at.Y + 1; y < at.Y+h; y++ {
		dst.Set(core.V2(left, y), n.Cells[3])
		dst.Set(core.V2(right, y), n.Cells[5])
	}

	dst.Set(core.V2(left, top), n.Cells[0])
	dst.Set(core.V2(right, top), n.Cells[2])
	dst.Set(core.V2(left, bottom), n.Cells[6])
	dst.Set(core.V2(right, bottom), n.Cells[8])

	return core.V2(at.X+1, at.Y+1)
}
