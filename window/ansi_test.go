package window

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

func newTestWriter() (*ansiWriter, *bytes.Buffer) {
	var buf bytes.Buffer
	return newAnsiWriter(&buf, termenv.TrueColor), &buf
}

func TestWriterMovement(t *testing.T) {
	w, buf := newTestWriter()
	w.cursorDown(2)
	w.cursorUp(1)
	w.cursorColumn(5)
	w.cursorColumn(0)
	w.cursorColumn(99)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "\x1b[2B\x1b[A\x1b[6G\r\x1b[100G"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriterStyleCoalesced(t *testing.T) {
	w, buf := newTestWriter()
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Bold(true)
	w.style(style)
	w.style(style)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "\x1b[0;1;38;2;255;0;0;49m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriterStyleReemittedAfterReset(t *testing.T) {
	w, buf := newTestWriter()
	style := tcell.StyleDefault.Bold(true)
	w.style(style)
	w.reset()
	w.style(style)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "\x1b[0;1;39;49m\x1b[0m\x1b[0;1;39;49m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriterStyleDegrades(t *testing.T) {
	var buf bytes.Buffer
	w := newAnsiWriter(&buf, termenv.ANSI256)
	w.style(tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)))
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(buf.String(), "38;5;") {
		t.Errorf("Expected a 256-color sequence, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "38;2;") {
		t.Errorf("Expected no truecolor sequence, got %q", buf.String())
	}
}

func TestStripWriterFrame(t *testing.T) {
	w, out := newTestWriter()
	s := &stripWriter{w: w}

	buf := render.NewBuffer(10, 3)
	render.Draw(buf, core.V2(2, 1), "hi")
	changes := buf.Diff(render.NewBuffer(10, 3))

	s.apply(buf, changes)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "\x1b[B\x1b[3G\x1b[0;39;49mhi\x1b[A\r\x1b[0m"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestStripWriterSkipsShadow(t *testing.T) {
	w, out := newTestWriter()
	s := &stripWriter{w: w}

	buf := render.NewBuffer(10, 1)
	render.Draw(buf, core.V2(0, 0), "日")
	changes := []render.Change{
		{At: core.V2(0, 0), Cell: buf.Get(core.V2(0, 0))},
		{At: core.V2(1, 0), Cell: buf.Get(core.V2(1, 0))},
	}

	s.apply(buf, changes)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "\x1b[0;39;49m日\r\x1b[0m"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestStripWriterEmptyFrame(t *testing.T) {
	w, out := newTestWriter()
	s := &stripWriter{w: w}
	s.apply(render.NewBuffer(10, 1), nil)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output for an empty diff, got %q", out.String())
	}
}

func TestStripWriterCursor(t *testing.T) {
	w, out := newTestWriter()
	s := &stripWriter{w: w}

	s.cursor(true, core.V2(3, 1), tcell.CursorStyleBlinkingBar)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "\x1b[B\x1b[4G\x1b[5 q\x1b[?25h"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}

	out.Reset()
	s.cursor(false, core.V2(0, 0), tcell.CursorStyleBlinkingBar)
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.String() != csiCursorHide {
		t.Errorf("Expected %q, got %q", csiCursorHide, out.String())
	}
}

func TestEmergencyRestore(t *testing.T) {
	var buf bytes.Buffer
	EmergencyRestore(&buf)
	out := buf.String()
	for _, seq := range []string{
		csiMouseOff,
		csiFocusOff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
	} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
