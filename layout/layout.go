package layout

import (
	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// Layout splits a total space into a grid of Rects: rows stacked top to
// bottom, each row's columns laid out left to right, all sized by
// constraints.
type Layout struct {
	rows []gridRow
}

type gridRow struct {
	height Constraint
	widths []Constraint
}

// New starts an empty layout
func New() *Layout {
	return &Layout{}
}

// Row appends a row with a height constraint and one width constraint per
// column
func (l *Layout) Row(height Constraint, widths ...Constraint) *Layout {
	l.rows = append(l.rows, gridRow{height: height, widths: widths})
	return l
}

// EmptyRow appends a full-width single-column row
func (l *Layout) EmptyRow(height Constraint) *Layout {
	return l.Row(height, Flexible())
}

// Calculate resolves every row and column against the total space
func (l *Layout) Calculate(space core.Vec2) ([][]Rect, error) {
	heights := make([]Constraint, len(l.rows))
	for i, r := range l.rows {
		heights[i] = r.height
	}
	rowHeights, err := Resolve(heights, space.Y)
	if err != nil {
		return nil, err
	}

	rects := make([][]Rect, 0, len(l.rows))
	y := 0
	for i, r := range l.rows {
		widths, err := Resolve(r.widths, space.X)
		if err != nil {
			return nil, err
		}
		row := make([]Rect, 0, len(widths))
		x := 0
		for _, w := range widths {
			row = append(row, NewRect(x, y, w, rowHeights[i]))
			x += w
		}
		rects = append(rects, row)
		y += rowHeights[i]
	}
	return rects, nil
}

// Draw calculates the layout and renders one element per grid cell at the
// cell's origin. Rows or cells without a matching element are skipped.
func (l *Layout) Draw(space core.Vec2, t render.Target, elements [][]any) ([][]Rect, error) {
	rects, err := l.Calculate(space)
	if err != nil {
		return nil, err
	}
	for ri, row := range rects {
		if ri >= len(elements) {
			break
		}
		for ci, rect := range row {
			if ci >= len(elements[ri]) {
				break
			}
			render.Draw(t, rect.Position(), elements[ri][ci])
		}
	}
	return rects, nil
}

// DrawClipped is Draw with each element clipped to its cell
func (l *Layout) DrawClipped(space core.Vec2, t render.Target, elements [][]any) ([][]Rect, error) {
	rects, err := l.Calculate(space)
	if err != nil {
		return nil, err
	}
	for ri, row := range rects {
		if ri >= len(elements) {
			break
		}
		for ci, rect := range row {
			if ci >= len(elements[ri]) {
				break
			}
			drawClipped(t, rect, elements[ri][ci])
		}
	}
	return rects, nil
}

// Calculated wraps a resolved grid with position helpers
type Calculated struct {
	rects [][]Rect
}

// Calculated resolves the layout and wraps the result
func (l *Layout) Calculated(space core.Vec2) (*Calculated, error) {
	rects, err := l.Calculate(space)
	if err != nil {
		return nil, err
	}
	return &Calculated{rects: rects}, nil
}

// At returns the rect at a grid position
func (c *Calculated) At(row, col int) (Rect, bool) {
	if row < 0 || row >= len(c.rects) || col < 0 || col >= len(c.rects[row]) {
		return Rect{}, false
	}
	return c.rects[row][col], true
}

// Row returns all rects of one row
func (c *Calculated) Row(row int) []Rect {
	if row < 0 || row >= len(c.rects) {
		return nil
	}
	return c.rects[row]
}

// RowCount returns the number of rows
func (c *Calculated) RowCount() int {
	return len(c.rects)
}

// ColCount returns the number of columns in a row
func (c *Calculated) ColCount(row int) int {
	if row < 0 || row >= len(c.rects) {
		return 0
	}
	return len(c.rects[row])
}

// Each visits every rect with its grid position
func (c *Calculated) Each(fn func(row, col int, r Rect)) {
	for ri, row := range c.rects {
		for ci, rect := range row {
			fn(ri, ci, rect)
		}
	}
}

// DrawAt renders elements at a grid cell's origin
func (c *Calculated) DrawAt(row, col int, t render.Target, elems ...any) (core.Vec2, bool) {
	rect, ok := c.At(row, col)
	if !ok {
		return core.Vec2{}, false
	}
	return render.Draw(t, rect.Position(), elems...), true
}

// DrawClippedAt renders elements clipped to a grid cell
func (c *Calculated) DrawClippedAt(row, col int, t render.Target, elems ...any) bool {
	rect, ok := c.At(row, col)
	if !ok {
		return false
	}
	drawClipped(t, rect, elems...)
	return true
}

// drawClipped renders through a rect-sized scratch buffer so nothing spills
// outside the cell
func drawClipped(t render.Target, rect Rect, elems ...any) {
	scratch := render.NewBuffer(rect.Width, rect.Height)
	render.Draw(scratch, core.V2(0, 0), elems...)
	scratch.Draw(t.Buffer(), rect.Position())
}
