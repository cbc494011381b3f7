package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// HLine is a horizontal rule element
type HLine struct {
	Width int
	Cell  render.Cell
}

// NewHLine returns a light horizontal rule
func NewHLine(width int) HLine {
	return HLine{Width: width, Cell: render.NewCell("─", tcell.StyleDefault)}
}

// Draw implements render.Element
func (l HLine) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if l.Width <= 0 {
		return at
	}
	for i := 0; i < l.Width; i++ {
		dst.Set(core.V2(at.X+i, at.Y), l.Cell)
	}
	return core.V2(at.X+l.Width, at.Y)
}

// VLine is a vertical rule element
type VLine struct {
	Height int
	Cell   render.Cell
}

// NewVLine returns a light vertical rule
func NewVLine(height int) VLine {
	return VLine{Height: height, Cell: render.NewCell("│", tcell.StyleDefault)}
}

// Draw implements render.Element
func (l VLine) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if l.Height <= 0 {
		return at
	}
	for i := 0; i < l.Height; i++ {
		dst.Set(core.V2(at.X, at.Y+i), l.Cell)
	}
	return core.V2(at.X, at.Y+l.Height)
}
