// Package widgets provides ready-made elements: borders, nine-slice fills,
// progress bars, rules and display-width text helpers.
package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// Border is a rectangular frame element. Drawing one returns the inner
// origin so content can be placed inside it. Borders under 3x3 draw
// nothing.
type Border struct {
	Size        core.Vec2
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Title       string
	Style       tcell.Style
}

// Square returns a light box drawing border
func Square(width, height int) Border {
	return Border{
		Size:        core.V2(width, height),
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

// Rounded returns a border with rounded corners
func Rounded(width, height int) Border {
	return Border{
		Size:        core.V2(width, height),
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

// Thick returns a heavy box drawing border
func Thick(width, height int) Border {
	return Border{
		Size:        core.V2(width, height),
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
}

// Double returns a double line border
func Double(width, height int) Border {
	return Border{
		Size:        core.V2(width, height),
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
}

// WithTitle returns a copy with the title centered on the top edge.
// Titles wider than the edge are truncated.
func (b Border) WithTitle(title string) Border {
	b.Title = title
	return b
}

// WithStyle returns a copy drawn in the given style
func (b Border) WithStyle(style tcell.Style) Border {
	b.Style = style
	return b
}

// Draw implements render.Element, returning the inner origin at+(1,1)
func (b Border) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if b.Size.X < 3 || b.Size.Y < 3 {
		return at
	}

	for y := at.Y + 1; y < at.Y+b.Size.Y-1; y++ {
		dst.Set(core.V2(at.X, y), render.NewCell(b.Vertical, b.Style))
		dst.Set(core.V2(at.X+b.Size.X-1, y), render.NewCell(b.Vertical, b.Style))
	}

	edge := strings.Repeat(b.Horizontal, b.Size.X-2)
	render.Styled(b.TopLeft+edge+b.TopRight, b.Style).Draw(dst, at)
	render.Styled(b.BottomLeft+edge+b.BottomRight, b.Style).Draw(dst, core.V2(at.X, at.Y+b.Size.Y-1))

	if b.Title != "" && b.Size.X > 4 {
		label := " " + Truncate(b.Title, b.Size.X-4) + " "
		x := at.X + (b.Size.X-Width(label))/2
		render.Styled(label, b.Style).Draw(dst, core.V2(x, at.Y))
	}

	return core.V2(at.X+1, at.Y+1)
}
