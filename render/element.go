package render

import (
	"fmt"

	"github.com/asciiforge/forge/core"
)

// Element is anything that can draw itself into a buffer at a position,
// returning the position where it ended
type Element interface {
	Draw(dst *Buffer, at core.Vec2) core.Vec2
}

// Target is a drawing destination exposing its cell buffer. Buffer and
// window.Window both qualify.
type Target interface {
	Buffer() *Buffer
}

// Draw renders elements into the target starting at the given position,
// threading the position so each element starts where the previous one
// ended, and returns the final end position.
//
// Accepted kinds: Element, string, rune, Cell, fmt.Stringer; anything else
// renders as fmt.Sprint of it.
func Draw(t Target, at core.Vec2, elems ...any) core.Vec2 {
	dst := t.Buffer()
	for _, e := range elems {
		at = toElement(e).Draw(dst, at)
	}
	return at
}

func toElement(v any) Element {
	switch e := v.(type) {
	case Element:
		return e
	case string:
		return Text{Content: e}
	case rune:
		return RuneCell(e)
	case fmt.Stringer:
		return Text{Content: e.String()}
	default:
		return Text{Content: fmt.Sprint(v)}
	}
}
