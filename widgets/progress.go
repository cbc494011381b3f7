package widgets

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// Progress is a horizontal bar element filled to Fraction of Width.
// Fraction clamps to [0, 1].
type Progress struct {
	Width    int
	Fraction float64
	Full     render.Cell
	Empty    render.Cell
}

// NewProgress returns a block-character bar
func NewProgress(width int, fraction float64) Progress {
	return Progress{
		Width:    width,
		Fraction: fraction,
		Full:     render.NewCell("█", tcell.StyleDefault),
		Empty:    render.NewCell("░", tcell.StyleDefault),
	}
}

// Draw implements render.Element
func (p Progress) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if p.Width <= 0 {
		return at
	}

	pct := p.Fraction
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(math.Round(pct * float64(p.Width)))

	for i := 0; i < p.Width; i++ {
		c := p.Empty
		if i < filled {
			c = p.Full
		}
		dst.Set(core.V2(at.X+i, at.Y), c)
	}
	return core.V2(at.X+p.Width, at.Y)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a frame-cycling glyph. Advance Frame once per tick, or call
// Tick.
type Spinner struct {
	Frames []string
	Frame  int
	Style  tcell.Style
}

// NewSpinner returns a braille spinner
func NewSpinner() Spinner {
	return Spinner{Frames: spinnerFrames}
}

// Tick advances to the next frame
func (s *Spinner) Tick() {
	s.Frame++
}

// Draw implements render.Element
func (s Spinner) Draw(dst *render.Buffer, at core.Vec2) core.Vec2 {
	if len(s.Frames) == 0 {
		return at
	}
	idx := s.Frame % len(s.Frames)
	if idx < 0 {
		idx = -idx
	}
	return render.NewCell(s.Frames[idx], s.Style).Draw(dst, at)
}
