package widgets

import (
	"testing"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

func TestProgressFill(t *testing.T) {
	cases := []struct {
		name     string
		width    int
		fraction float64
		filled   int
	}{
		{"empty", 10, 0, 0},
		{"half", 10, 0.5, 5},
		{"rounds", 3, 0.5, 2},
		{"full", 10, 1, 10},
		{"clamped high", 10, 1.5, 10},
		{"clamped low", 10, -0.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := render.NewBuffer(tc.width, 1)
			end := NewProgress(tc.width, tc.fraction).Draw(buf, core.V2(0, 0))
			if end != core.V2(tc.width, 0) {
				t.Errorf("Expected end (%d, 0), got %v", tc.width, end)
			}

			filled := 0
			for x := 0; x < tc.width; x++ {
				switch buf.Get(core.V2(x, 0)).Text {
				case "█":
					filled++
				case "░":
				default:
					t.Errorf("Expected bar cell at column %d", x)
				}
			}
			if filled != tc.filled {
				t.Errorf("Expected %d filled cells, got %d", tc.filled, filled)
			}
		})
	}
}

func TestProgressZeroWidth(t *testing.T) {
	buf := render.NewBuffer(4, 4)
	end := NewProgress(0, 0.5).Draw(buf, core.V2(2, 2))
	if end != core.V2(2, 2) {
		t.Errorf("Expected position unchanged, got %v", end)
	}
}

func TestSpinnerCycles(t *testing.T) {
	s := NewSpinner()
	buf := render.NewBuffer(2, 1)

	s.Draw(buf, core.V2(0, 0))
	first := buf.Get(core.V2(0, 0)).Text

	s.Frame = len(s.Frames)
	s.Draw(buf, core.V2(0, 0))
	if got := buf.Get(core.V2(0, 0)).Text; got != first {
		t.Errorf("Expected frame to wrap to %q, got %q", first, got)
	}

	s.Tick()
	s.Draw(buf, core.V2(0, 0))
	if got := buf.Get(core.V2(0, 0)).Text; got == first {
		t.Error("Expected next frame to differ")
	}
}

func TestLines(t *testing.T) {
	buf := render.NewBuffer(5, 5)

	end := NewHLine(4).Draw(buf, core.V2(0, 0))
	if end != core.V2(4, 0) {
		t.Errorf("Expected end (4, 0), got %v", end)
	}
	for x := 0; x < 4; x++ {
		if got := buf.Get(core.V2(x, 0)).Text; got != "─" {
			t.Errorf("Expected rule at column %d, got %q", x, got)
		}
	}

	end = NewVLine(3).Draw(buf, core.V2(0, 1))
	if end != core.V2(0, 4) {
		t.Errorf("Expected end (0, 4), got %v", end)
	}
	for y := 1; y < 4; y++ {
		if got := buf.Get(core.V2(0, y)).Text; got != "│" {
			t.Errorf("Expected rule at row %d, got %q", y, got)
		}
	}
}
