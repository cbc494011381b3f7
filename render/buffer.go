package render

import (
	"github.com/asciiforge/forge/core"
)

// Buffer is a 2D grid of cells addressed by Vec2. Writes outside the bounds
// are ignored; reads outside the bounds return the blank cell.
type Buffer struct {
	size  core.Vec2
	cells []Cell
}

// Change is one cell difference between two frames
type Change struct {
	At   core.Vec2
	Cell Cell
}

// NewBuffer creates a blank buffer, negative dimensions clamp to zero
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		size:  core.V2(width, height),
		cells: make([]Cell, width*height),
	}
	b.Fill(Blank)
	return b
}

// Size returns the buffer dimensions
func (b *Buffer) Size() core.Vec2 {
	return b.size
}

// Buffer makes Buffer its own draw target
func (b *Buffer) Buffer() *Buffer {
	return b
}

// Set writes a cell, ignoring out-of-bounds positions
func (b *Buffer) Set(at core.Vec2, c Cell) {
	if !at.In(b.size) {
		return
	}
	b.cells[at.Y*b.size.X+at.X] = c
}

// Get reads a cell, returning Blank for out-of-bounds positions
func (b *Buffer) Get(at core.Vec2) Cell {
	if !at.In(b.size) {
		return Blank
	}
	return b.cells[at.Y*b.size.X+at.X]
}

// Fill sets every cell using exponential copy
func (b *Buffer) Fill(c Cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = c
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Clear blanks the buffer
func (b *Buffer) Clear() {
	b.Fill(Blank)
}

// Resize adjusts the dimensions, keeping the overlapping region and
// blanking the rest. No-op when the size is unchanged.
func (b *Buffer) Resize(size core.Vec2) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	if size == b.size {
		return
	}
	nb := NewBuffer(size.X, size.Y)
	w := min(size.X, b.size.X)
	for y := 0; y < min(size.Y, b.size.Y); y++ {
		copy(nb.cells[y*size.X:y*size.X+w], b.cells[y*b.size.X:y*b.size.X+w])
	}
	b.size = nb.size
	b.cells = nb.cells
}

// Shrink drops trailing rows and columns that hold only whitespace.
// An entirely blank buffer shrinks to 1x1.
func (b *Buffer) Shrink() {
	maxX, maxY := 0, 0
	for y := 0; y < b.size.Y; y++ {
		row := y * b.size.X
		for x := 0; x < b.size.X; x++ {
			if !b.cells[row+x].IsEmpty() {
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	b.Resize(core.V2(maxX+1, maxY+1))
}

// Diff returns the cells of b that differ from prev, in row-major order.
// Buffers of different sizes report every cell.
func (b *Buffer) Diff(prev *Buffer) []Change {
	if prev == nil || prev.size != b.size {
		out := make([]Change, 0, len(b.cells))
		for y := 0; y < b.size.Y; y++ {
			for x := 0; x < b.size.X; x++ {
				out = append(out, Change{At: core.V2(x, y), Cell: b.cells[y*b.size.X+x]})
			}
		}
		return out
	}
	var out []Change
	for y := 0; y < b.size.Y; y++ {
		row := y * b.size.X
		for x := 0; x < b.size.X; x++ {
			if b.cells[row+x] != prev.cells[row+x] {
				out = append(out, Change{At: core.V2(x, y), Cell: b.cells[row+x]})
			}
		}
	}
	return out
}

// Draw blits the buffer into dst at the given position, clipping at the
// destination bounds, and returns the position past the blit
func (b *Buffer) Draw(dst *Buffer, at core.Vec2) core.Vec2 {
	for y := 0; y < b.size.Y; y++ {
		if at.Y+y >= dst.size.Y {
			break
		}
		row := y * b.size.X
		for x := 0; x < b.size.X; x++ {
			if at.X+x >= dst.size.X {
				break
			}
			dst.Set(core.V2(at.X+x, at.Y+y), b.cells[row+x])
		}
	}
	return at.Add(core.V2(b.size.X, b.size.Y))
}

// Sized renders the element into a scratch buffer and shrinks it to the
// smallest buffer that holds it
func Sized(el Element) *Buffer {
	b := NewBuffer(100, 100)
	Draw(b, core.V2(0, 0), el)
	b.Shrink()
	return b
}
