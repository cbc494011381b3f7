package window

import (
	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// eventBacklog is the capacity of the backend event channel
const eventBacklog = 128

// backend is the terminal a Window draws to: a tcell screen in fullscreen
// mode, or the inline ANSI writer. apply queues cell changes, cursor
// queues cursor state, show commits the frame.
type backend interface {
	size() core.Vec2
	apply(buf *render.Buffer, changes []render.Change) error
	cursor(visible bool, at core.Vec2, style tcell.CursorStyle) error
	show(full bool) error
	events() <-chan tcell.Event
	restore() error
}

// shadowed reports whether the cell sits in the shadow of a wide cell to
// its left. Shadowed cells are never emitted: the wide glyph owns both
// columns.
func shadowed(buf *render.Buffer, at core.Vec2) bool {
	if at.X == 0 {
		return false
	}
	return buf.Get(core.V2(at.X-1, at.Y)).Width() > 1
}

// clusterRunes splits a cluster into tcell's primary rune and combiners
func clusterRunes(text string) (rune, []rune) {
	rs := []rune(text)
	if len(rs) == 0 {
		return ' ', nil
	}
	return rs[0], rs[1:]
}
