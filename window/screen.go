package window

import (
	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// screenBackend drives a tcell.Screen. Events are pumped from the screen
// into a buffered channel so Update can drain without blocking.
type screenBackend struct {
	screen tcell.Screen
	ch     chan tcell.Event
	quit   chan struct{}
}

func newScreenBackend(screen tcell.Screen) *screenBackend {
	b := &screenBackend{
		screen: screen,
		ch:     make(chan tcell.Event, eventBacklog),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(b.ch, b.quit)
	return b
}

func (b *screenBackend) size() core.Vec2 {
	w, h := b.screen.Size()
	return core.V2(w, h)
}

func (b *screenBackend) apply(buf *render.Buffer, changes []render.Change) error {
	for _, ch := range changes {
		if shadowed(buf, ch.At) {
			continue
		}
		main, comb := clusterRunes(ch.Cell.Text)
		b.screen.SetContent(ch.At.X, ch.At.Y, main, comb, ch.Cell.Style)
	}
	return nil
}

func (b *screenBackend) cursor(visible bool, at core.Vec2, style tcell.CursorStyle) error {
	if !visible {
		b.screen.HideCursor()
		return nil
	}
	b.screen.SetCursorStyle(style)
	b.screen.ShowCursor(at.X, at.Y)
	return nil
}

func (b *screenBackend) show(full bool) error {
	if full {
		b.screen.Sync()
	} else {
		b.screen.Show()
	}
	return nil
}

func (b *screenBackend) events() <-chan tcell.Event {
	return b.ch
}

func (b *screenBackend) restore() error {
	close(b.quit)
	b.screen.Fini()
	return nil
}
