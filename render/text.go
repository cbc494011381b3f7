package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/asciiforge/forge/core"
)

// Text is a styled, possibly multi-line string element. Lines render top to
// bottom, each restarting at the starting column. Every grapheme cluster
// occupies one cell and advances the column by its display width, so wide
// glyphs take two columns.
type Text struct {
	Content string
	Style   tcell.Style
}

// Styled builds a Text with the given style
func Styled(content string, style tcell.Style) Text {
	return Text{Content: content, Style: style}
}

// Draw implements Element. The end position is one past the last cluster of
// the last line, on the last line's row.
func (t Text) Draw(dst *Buffer, at core.Vec2) core.Vec2 {
	loc := at
	for i, line := range strings.Split(norm.NFC.String(t.Content), "\n") {
		if i > 0 {
			loc.Y++
		}
		loc.X = at.X
		loc = drawLine(dst, loc, line, t.Style)
	}
	return loc
}

// drawLine places one line of clusters starting at loc and returns the
// position past the last cluster
func drawLine(dst *Buffer, loc core.Vec2, line string, style tcell.Style) core.Vec2 {
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		dst.Set(loc, Cell{Text: cluster, Style: style})
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		loc.X += w
	}
	return loc
}
