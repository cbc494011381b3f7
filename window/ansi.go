package window

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

const (
	csiCursorHide    = "\x1b[?25l"
	csiCursorShow    = "\x1b[?25h"
	csiAutoWrapOn    = "\x1b[?7h"
	csiAutoWrapOff   = "\x1b[?7l"
	csiMouseOn       = "\x1b[?1000h\x1b[?1002h\x1b[?1003h\x1b[?1006h"
	csiMouseOff      = "\x1b[?1006l\x1b[?1003l\x1b[?1002l\x1b[?1000l"
	csiFocusOn       = "\x1b[?1004h"
	csiFocusOff      = "\x1b[?1004l"
	csiSGR0          = "\x1b[0m"
	csiAltScreenExit = "\x1b[?1049l"
)

// ansiWriter batches escape sequences into a buffered writer. Styles are
// coalesced: a style identical to the last emitted one writes nothing.
type ansiWriter struct {
	w       *bufio.Writer
	profile termenv.Profile
	last    tcell.Style
	lastSet bool
}

func newAnsiWriter(w io.Writer, profile termenv.Profile) *ansiWriter {
	return &ansiWriter{w: bufio.NewWriterSize(w, 32*1024), profile: profile}
}

func (w *ansiWriter) flush() error {
	return w.w.Flush()
}

func (w *ansiWriter) text(s string) {
	w.w.WriteString(s)
}

// writeInt writes n in decimal without allocating
func (w *ansiWriter) writeInt(n int) {
	if n >= 10 {
		w.writeInt(n / 10)
	}
	w.w.WriteByte(byte('0' + n%10))
}

func (w *ansiWriter) cursorUp(n int) {
	if n <= 0 {
		return
	}
	w.w.WriteString("\x1b[")
	if n > 1 {
		w.writeInt(n)
	}
	w.w.WriteByte('A')
}

func (w *ansiWriter) cursorDown(n int) {
	if n <= 0 {
		return
	}
	w.w.WriteString("\x1b[")
	if n > 1 {
		w.writeInt(n)
	}
	w.w.WriteByte('B')
}

// cursorColumn moves to a 0-based column within the current row
func (w *ansiWriter) cursorColumn(x int) {
	if x == 0 {
		w.w.WriteByte('\r')
		return
	}
	w.w.WriteString("\x1b[")
	w.writeInt(x + 1)
	w.w.WriteByte('G')
}

func (w *ansiWriter) hideCursor()  { w.w.WriteString(csiCursorHide) }
func (w *ansiWriter) showCursor()  { w.w.WriteString(csiCursorShow) }
func (w *ansiWriter) mouseOn()     { w.w.WriteString(csiMouseOn) }
func (w *ansiWriter) mouseOff()    { w.w.WriteString(csiMouseOff) }
func (w *ansiWriter) focusOn()     { w.w.WriteString(csiFocusOn) }
func (w *ansiWriter) focusOff()    { w.w.WriteString(csiFocusOff) }
func (w *ansiWriter) autoWrapOn()  { w.w.WriteString(csiAutoWrapOn) }
func (w *ansiWriter) autoWrapOff() { w.w.WriteString(csiAutoWrapOff) }

func (w *ansiWriter) cursorStyle(style tcell.CursorStyle) {
	w.w.WriteString("\x1b[")
	w.writeInt(int(style))
	w.w.WriteString(" q")
}

// reset clears attributes and invalidates the style memo
func (w *ansiWriter) reset() {
	w.w.WriteString(csiSGR0)
	w.lastSet = false
}

func (w *ansiWriter) style(s tcell.Style) {
	if w.lastSet && s == w.last {
		return
	}
	w.last, w.lastSet = s, true

	fg, bg, attr := s.Decompose()
	w.w.WriteString("\x1b[0")
	if attr&tcell.AttrBold != 0 {
		w.w.WriteString(";1")
	}
	if attr&tcell.AttrDim != 0 {
		w.w.WriteString(";2")
	}
	if attr&tcell.AttrItalic != 0 {
		w.w.WriteString(";3")
	}
	if attr&tcell.AttrUnderline != 0 {
		w.w.WriteString(";4")
	}
	if attr&tcell.AttrBlink != 0 {
		w.w.WriteString(";5")
	}
	if attr&tcell.AttrReverse != 0 {
		w.w.WriteString(";7")
	}
	if attr&tcell.AttrStrikeThrough != 0 {
		w.w.WriteString(";9")
	}
	w.w.WriteByte(';')
	w.w.WriteString(w.colorSeq(fg, false))
	w.w.WriteByte(';')
	w.w.WriteString(w.colorSeq(bg, true))
	w.w.WriteByte('m')
}

// colorSeq renders a color as SGR parameters, degraded to the terminal's
// profile. Invalid colors map to the default foreground or background.
func (w *ansiWriter) colorSeq(c tcell.Color, bg bool) string {
	def := "39"
	if bg {
		def = "49"
	}
	if !c.Valid() {
		return def
	}
	conv := w.profile.Convert(termenv.RGBColor(fmt.Sprintf("#%06x", c.Hex())))
	if conv == nil {
		return def
	}
	seq := conv.Sequence(bg)
	if seq == "" {
		return def
	}
	return seq
}

// stripWriter renders buffer changes into an inline strip using relative
// cursor movement only. The physical cursor starts at the strip's top-left
// corner and every frame parks it back there, so the strip can live at any
// scrollback position.
type stripWriter struct {
	w   *ansiWriter
	row int
	col int
}

func (s *stripWriter) moveTo(at core.Vec2) {
	switch {
	case at.Y > s.row:
		s.w.cursorDown(at.Y - s.row)
	case at.Y < s.row:
		s.w.cursorUp(s.row - at.Y)
	}
	if at.X != s.col {
		s.w.cursorColumn(at.X)
	}
	s.row, s.col = at.Y, at.X
}

func (s *stripWriter) apply(buf *render.Buffer, changes []render.Change) {
	wrote := false
	for _, ch := range changes {
		if shadowed(buf, ch.At) {
			continue
		}
		s.moveTo(ch.At)
		s.w.style(ch.Cell.Style)
		s.w.text(ch.Cell.Text)
		w := ch.Cell.Width()
		if w < 1 {
			w = 1
		}
		s.col += w
		wrote = true
	}
	if wrote {
		s.park()
	}
}

// park returns the cursor to the strip origin with attributes cleared
func (s *stripWriter) park() {
	s.moveTo(core.V2(0, 0))
	s.w.reset()
}

func (s *stripWriter) cursor(visible bool, at core.Vec2, style tcell.CursorStyle) {
	if !visible {
		s.w.hideCursor()
		return
	}
	s.moveTo(at)
	s.w.cursorStyle(style)
	s.w.showCursor()
}
