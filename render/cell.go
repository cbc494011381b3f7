package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/asciiforge/forge/core"
)

// Cell is a single buffer cell: one grapheme cluster and its style.
// Text may hold more than one rune (combining marks, emoji sequences);
// a cluster wider than one column shadows the cell to its right.
type Cell struct {
	Text  string
	Style tcell.Style
}

// Blank is the cell buffers are filled with
var Blank = Cell{Text: " ", Style: tcell.StyleDefault}

// NewCell builds a styled cell from the given cluster
func NewCell(text string, style tcell.Style) Cell {
	return Cell{Text: text, Style: style}
}

// RuneCell builds an unstyled single-rune cell
func RuneCell(r rune) Cell {
	return Cell{Text: string(r), Style: tcell.StyleDefault}
}

// Width returns the display width of the cell's cluster
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Text)
}

// IsEmpty reports whether the cell holds only whitespace, style ignored
func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Draw places the cell and advances past it
func (c Cell) Draw(dst *Buffer, at core.Vec2) core.Vec2 {
	dst.Set(at, c)
	w := c.Width()
	if w < 1 {
		w = 1
	}
	return core.V2(at.X+w, at.Y)
}
