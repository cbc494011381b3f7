package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
)

func TestTextEndPosition(t *testing.T) {
	buf := NewBuffer(40, 10)
	end := Draw(buf, core.V2(2, 3), "Hello")
	if end != core.V2(7, 3) {
		t.Errorf("Expected end position (7, 3), got %v", end)
	}
	if c := buf.Get(core.V2(2, 3)); c.Text != "H" {
		t.Errorf("Expected 'H' at (2, 3), got %q", c.Text)
	}
	if c := buf.Get(core.V2(6, 3)); c.Text != "o" {
		t.Errorf("Expected 'o' at (6, 3), got %q", c.Text)
	}
}

func TestTextMultiline(t *testing.T) {
	buf := NewBuffer(40, 10)
	end := Draw(buf, core.V2(1, 1), "ab\ncde")

	// Each line restarts at the starting column
	want := map[core.Vec2]string{
		core.V2(1, 1): "a",
		core.V2(2, 1): "b",
		core.V2(1, 2): "c",
		core.V2(2, 2): "d",
		core.V2(3, 2): "e",
	}
	for at, text := range want {
		if c := buf.Get(at); c.Text != text {
			t.Errorf("Expected %q at %v, got %q", text, at, c.Text)
		}
	}
	if end != core.V2(4, 2) {
		t.Errorf("Expected end position (4, 2), got %v", end)
	}
}

func TestTextWideGlyph(t *testing.T) {
	buf := NewBuffer(40, 10)
	end := Draw(buf, core.V2(0, 0), "a\U0001F680b") // a, rocket, b

	if c := buf.Get(core.V2(0, 0)); c.Text != "a" {
		t.Errorf("Expected 'a' at (0, 0), got %q", c.Text)
	}
	rocket := buf.Get(core.V2(1, 0))
	if rocket.Text != "\U0001F680" {
		t.Errorf("Expected rocket at (1, 0), got %q", rocket.Text)
	}
	if rocket.Width() != 2 {
		t.Errorf("Expected rocket width 2, got %d", rocket.Width())
	}
	// The shadow column is never written
	if c := buf.Get(core.V2(2, 0)); c != Blank {
		t.Errorf("Expected blank shadow at (2, 0), got %+v", c)
	}
	if c := buf.Get(core.V2(3, 0)); c.Text != "b" {
		t.Errorf("Expected 'b' at (3, 0), got %q", c.Text)
	}
	if end != core.V2(4, 0) {
		t.Errorf("Expected end position (4, 0), got %v", end)
	}
}

func TestTextGraphemeCluster(t *testing.T) {
	// A ZWJ family is one cluster and must land in one cell
	family := "\U0001F469‍\U0001F469‍\U0001F467‍\U0001F466"
	buf := NewBuffer(40, 10)
	Draw(buf, core.V2(0, 0), family)

	if c := buf.Get(core.V2(0, 0)); c.Text != family {
		t.Errorf("Expected whole cluster in one cell, got %q", c.Text)
	}
}

func TestTextNormalization(t *testing.T) {
	// Decomposed e + combining acute composes to a single cell
	buf := NewBuffer(40, 10)
	end := Draw(buf, core.V2(0, 0), "é")
	if c := buf.Get(core.V2(0, 0)); c.Text != "é" {
		t.Errorf("Expected composed é, got %q", c.Text)
	}
	if end != core.V2(1, 0) {
		t.Errorf("Expected end position (1, 0), got %v", end)
	}
}

func TestStyledText(t *testing.T) {
	style := tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)
	buf := NewBuffer(40, 10)
	Draw(buf, core.V2(0, 0), Styled("hi", style))

	for x := 0; x < 2; x++ {
		if c := buf.Get(core.V2(x, 0)); c.Style != style {
			t.Errorf("Expected styled cell at (%d, 0), got %+v", x, c.Style)
		}
	}
}

type stringerValue struct{}

func (stringerValue) String() string { return "str" }

func TestDrawThreading(t *testing.T) {
	buf := NewBuffer(40, 10)
	end := Draw(buf, core.V2(0, 0), "ab", 'c', Styled("d", tcell.StyleDefault))
	if end != core.V2(4, 0) {
		t.Errorf("Expected end position (4, 0), got %v", end)
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if c := buf.Get(core.V2(i, 0)); c.Text != want {
			t.Errorf("Expected %q at (%d, 0), got %q", want, i, c.Text)
		}
	}
}

func TestDrawConversions(t *testing.T) {
	buf := NewBuffer(40, 10)

	// fmt.Stringer
	Draw(buf, core.V2(0, 0), stringerValue{})
	for i, want := range []string{"s", "t", "r"} {
		if c := buf.Get(core.V2(i, 0)); c.Text != want {
			t.Errorf("Expected %q at (%d, 0), got %q", want, i, c.Text)
		}
	}

	// Anything else renders via fmt.Sprint
	Draw(buf, core.V2(0, 1), 42)
	if c := buf.Get(core.V2(0, 1)); c.Text != "4" {
		t.Errorf("Expected '4' at (0, 1), got %q", c.Text)
	}
	if c := buf.Get(core.V2(1, 1)); c.Text != "2" {
		t.Errorf("Expected '2' at (1, 1), got %q", c.Text)
	}

	// A Cell lands whole and advances by its width
	end := Draw(buf, core.V2(0, 2), NewCell("\U0001F680", tcell.StyleDefault), 'x')
	if end != core.V2(3, 2) {
		t.Errorf("Expected end position (3, 2), got %v", end)
	}
	if c := buf.Get(core.V2(2, 2)); c.Text != "x" {
		t.Errorf("Expected 'x' after wide cell, got %q", c.Text)
	}
}
