package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLerpEndpoints(t *testing.T) {
	a := tcell.NewRGBColor(10, 20, 30)
	b := tcell.NewRGBColor(200, 100, 0)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Expected a at t=0, got %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Expected b at t=1, got %v", got)
	}
	if got := Lerp(a, b, -0.5); got != a {
		t.Errorf("Expected clamp to a below 0, got %v", got)
	}
	if got := Lerp(a, b, 1.5); got != b {
		t.Errorf("Expected clamp to b above 1, got %v", got)
	}
}

func TestLerpMidpoint(t *testing.T) {
	mid := Lerp(tcell.ColorBlack, tcell.ColorWhite, 0.5)
	r, g, b := mid.RGB()
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("Expected (128, 128, 128) at midpoint, got (%d, %d, %d)", r, g, b)
	}
}

func TestRamp(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(200, 100, 50)

	ramp := Ramp(a, b, 5)
	if len(ramp) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(ramp))
	}
	if ramp[0] != a {
		t.Errorf("Expected ramp to start at a, got %v", ramp[0])
	}
	if ramp[4] != b {
		t.Errorf("Expected ramp to end at b, got %v", ramp[4])
	}
	prev := int32(-1)
	for i, c := range ramp {
		r, _, _ := c.RGB()
		if r < prev {
			t.Errorf("Expected red channel to be monotonic, got %d after %d at step %d", r, prev, i)
		}
		prev = r
	}

	if got := Ramp(a, b, 0); got != nil {
		t.Errorf("Expected nil for n=0, got %v", got)
	}
	if got := Ramp(a, b, 1); len(got) != 1 || got[0] != a {
		t.Errorf("Expected [a] for n=1, got %v", got)
	}
}
