// Package window owns the terminal: double-buffered drawing, the frame
// loop, input events and the cursor. Programs draw into the active buffer
// each frame, then Update flushes the diff against the previous frame,
// swaps buffers and polls input.
//
// Init takes over the whole terminal through tcell. InitInline reserves a
// strip of lines at the current scrollback position instead, leaving the
// rest of the terminal alone.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

var (
	// ErrNotTerminal means stdout is not attached to a terminal
	ErrNotTerminal = errors.New("stdout is not a terminal")

	// ErrInlineUnsupported means inline mode is unavailable on this platform
	ErrInlineUnsupported = errors.New("inline mode is not supported on this platform")

	// ErrRestored means the window was already restored
	ErrRestored = errors.New("window already restored")
)

type cursorState struct {
	visible bool
	pos     core.Vec2
	style   tcell.CursorStyle
}

// Window is a double-buffered terminal canvas. It satisfies render.Target,
// so elements draw onto it directly with render.Draw.
type Window struct {
	backend backend
	buffers [2]*render.Buffer
	active  int

	events []tcell.Event

	cursorVisible bool
	cursorPos     core.Vec2
	cursorStyle   tcell.CursorStyle
	lastCursor    cursorState

	mousePos    core.Vec2
	justResized bool
	inline      bool
	restored    bool
}

// Init takes over the terminal in fullscreen mode: alternate screen, raw
// input, mouse and focus reporting on, cursor hidden.
func Init() (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	return New(screen), nil
}

// New wraps an already initialized tcell screen. Useful with
// tcell.NewSimulationScreen in tests.
func New(screen tcell.Screen) *Window {
	return newWindow(newScreenBackend(screen), false)
}

// InitInline reserves height lines at the current position in the
// terminal's normal buffer and draws only inside that strip. Output
// printed before the window stays in scrollback. The strip does not
// resize with the terminal.
func InitInline(height int) (*Window, error) {
	b, err := newInlineBackend(height)
	if err != nil {
		return nil, err
	}
	return newWindow(b, true), nil
}

func newWindow(b backend, inline bool) *Window {
	size := b.size()
	return &Window{
		backend: b,
		buffers: [2]*render.Buffer{
			render.NewBuffer(size.X, size.Y),
			render.NewBuffer(size.X, size.Y),
		},
		cursorStyle: tcell.CursorStyleSteadyBlock,
		inline:      inline,
	}
}

// Buffer returns the active drawing buffer for the current frame
func (w *Window) Buffer() *render.Buffer {
	return w.buffers[w.active]
}

// Size returns the drawable area in cells
func (w *Window) Size() core.Vec2 {
	return w.Buffer().Size()
}

// Update runs one frame: flush the drawn buffer, swap, then collect input.
// It waits up to poll for the first event and then drains whatever else is
// queued without waiting. A non-positive poll only drains.
func (w *Window) Update(poll time.Duration) error {
	if err := w.Flush(); err != nil {
		return err
	}
	w.SwapBuffers()
	w.events = w.events[:0]

	ev := w.waitEvent(poll)
	if ev == nil {
		return nil
	}
	w.record(ev)
	for {
		select {
		case ev := <-w.backend.events():
			if ev == nil {
				return nil
			}
			w.record(ev)
		default:
			return nil
		}
	}
}

// Flush writes the active buffer to the terminal. Only cells that differ
// from the previous frame are emitted, except right after a resize, when
// every cell is repainted.
func (w *Window) Flush() error {
	if w.restored {
		return ErrRestored
	}
	full := w.justResized
	w.justResized = false

	var changes []render.Change
	if full {
		changes = w.Buffer().Diff(nil)
	} else {
		changes = w.Buffer().Diff(w.buffers[1-w.active])
	}
	if err := w.backend.apply(w.Buffer(), changes); err != nil {
		return err
	}

	// A visible cursor is reapplied whenever cells were written, since
	// drawing moves the physical cursor out from under it
	cur := cursorState{w.cursorVisible, w.cursorPos, w.cursorStyle}
	if cur != w.lastCursor || (cur.visible && len(changes) > 0) {
		if err := w.backend.cursor(cur.visible, cur.pos, cur.style); err != nil {
			return err
		}
		w.lastCursor = cur
	}
	return w.backend.show(full)
}

// SwapBuffers makes the previous frame's buffer active and clears it.
// Content is not carried across frames: draw everything, every frame.
func (w *Window) SwapBuffers() {
	w.active = 1 - w.active
	w.buffers[w.active].Clear()
}

func (w *Window) waitEvent(poll time.Duration) tcell.Event {
	if poll <= 0 {
		select {
		case ev := <-w.backend.events():
			return ev
		default:
			return nil
		}
	}
	timer := time.NewTimer(poll)
	defer timer.Stop()
	select {
	case ev := <-w.backend.events():
		return ev
	case <-timer.C:
		return nil
	}
}

func (w *Window) record(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		if !w.inline {
			width, height := e.Size()
			w.buffers[0] = render.NewBuffer(width, height)
			w.buffers[1] = render.NewBuffer(width, height)
			w.justResized = true
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		w.mousePos = core.V2(x, y)
	}
	w.events = append(w.events, ev)
}

// Events returns the events collected by the last Update. The slice is
// reused; it is valid until the next Update.
func (w *Window) Events() []tcell.Event {
	return w.events
}

// Event reports whether any event from the last update satisfies fn
func (w *Window) Event(fn func(tcell.Event) bool) bool {
	for _, ev := range w.events {
		if fn(ev) {
			return true
		}
	}
	return false
}

// Key reports whether the key was pressed during the last update
func (w *Window) Key(key tcell.Key) bool {
	return w.Event(func(ev tcell.Event) bool {
		k, ok := ev.(*tcell.EventKey)
		return ok && k.Key() == key
	})
}

// Rune reports whether the character was typed during the last update
func (w *Window) Rune(r rune) bool {
	return w.Event(func(ev tcell.Event) bool {
		k, ok := ev.(*tcell.EventKey)
		return ok && k.Key() == tcell.KeyRune && k.Rune() == r
	})
}

// InsertEvent appends a synthetic event with the same side effects a
// polled one would have: resizes reallocate the buffers, mouse events
// move the hover position.
func (w *Window) InsertEvent(ev tcell.Event) {
	w.record(ev)
}

// ClearEvents drops all events collected so far this frame
func (w *Window) ClearEvents() {
	w.events = w.events[:0]
}

// Cursor returns the requested terminal cursor position
func (w *Window) Cursor() core.Vec2 {
	return w.cursorPos
}

// SetCursor places the terminal cursor, clamped to the window
func (w *Window) SetCursor(pos core.Vec2) {
	size := w.Size()
	w.cursorPos = core.V2(
		clamp(pos.X, 0, size.X-1),
		clamp(pos.Y, 0, size.Y-1),
	)
}

// MoveCursor shifts the terminal cursor, clamped to the window
func (w *Window) MoveCursor(dx, dy int) {
	w.SetCursor(core.V2(w.cursorPos.X+dx, w.cursorPos.Y+dy))
}

func (w *Window) CursorVisible() bool {
	return w.cursorVisible
}

func (w *Window) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
}

func (w *Window) CursorStyle() tcell.CursorStyle {
	return w.cursorStyle
}

func (w *Window) SetCursorStyle(style tcell.CursorStyle) {
	w.cursorStyle = style
}

// MousePos returns the position of the last mouse event
func (w *Window) MousePos() core.Vec2 {
	return w.mousePos
}

// Hover reports whether the mouse is over the rectangle at loc, edges
// inclusive
func (w *Window) Hover(loc, size core.Vec2) bool {
	p := w.mousePos
	return p.X >= loc.X && p.X <= loc.X+size.X &&
		p.Y >= loc.Y && p.Y <= loc.Y+size.Y
}

// Restore returns the terminal to its normal state. It is safe to call
// more than once; only the first call does anything.
func (w *Window) Restore() error {
	if w.restored {
		return nil
	}
	w.restored = true
	return w.backend.restore()
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
