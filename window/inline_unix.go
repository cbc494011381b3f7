//go:build unix

package window

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
)

// pollInterval bounds the input wait in milliseconds, so a pending lone
// ESC flushes as a real escape keypress and stop requests are noticed
const pollInterval = 50

type inlineBackend struct {
	out    *os.File
	inFd   int
	outFd  int
	saved  *term.State
	width  int
	height int

	writer *ansiWriter
	strip  stripWriter

	ch   chan tcell.Event
	stop chan struct{}
	done chan struct{}

	restored bool
}

func newInlineBackend(height int) (backend, error) {
	if height < 1 {
		return nil, fmt.Errorf("inline window height must be positive, got %d", height)
	}
	out := os.Stdout
	outFd := int(out.Fd())
	if !term.IsTerminal(outFd) {
		return nil, ErrNotTerminal
	}

	width, _ := terminalSize(outFd)

	// Scroll the strip into existence before raw mode, so the terminal
	// does the scrolling and scrollback above stays intact
	if height > 1 {
		fmt.Fprint(out, strings.Repeat("\n", height-1))
	}

	inFd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	b := &inlineBackend{
		out:    out,
		inFd:   inFd,
		outFd:  outFd,
		saved:  saved,
		width:  width,
		height: height,
		writer: newAnsiWriter(out, termenv.ColorProfile()),
		ch:     make(chan tcell.Event, eventBacklog),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	// The reserved newlines left the cursor on the strip's last line
	b.strip = stripWriter{w: b.writer, row: height - 1}
	b.strip.moveTo(core.V2(0, 0))
	b.writer.hideCursor()
	b.writer.autoWrapOff()
	b.writer.mouseOn()
	b.writer.focusOn()
	if err := b.writer.flush(); err != nil {
		term.Restore(inFd, saved)
		return nil, fmt.Errorf("prepare inline window: %w", err)
	}

	go b.readLoop()
	go b.watchResize()
	return b, nil
}

func (b *inlineBackend) size() core.Vec2 {
	return core.V2(b.width, b.height)
}

func (b *inlineBackend) apply(buf *render.Buffer, changes []render.Change) error {
	b.strip.apply(buf, changes)
	return nil
}

func (b *inlineBackend) cursor(visible bool, at core.Vec2, style tcell.CursorStyle) error {
	b.strip.cursor(visible, at, style)
	return nil
}

func (b *inlineBackend) show(bool) error {
	return b.writer.flush()
}

func (b *inlineBackend) events() <-chan tcell.Event {
	return b.ch
}

func (b *inlineBackend) restore() error {
	if b.restored {
		return nil
	}
	b.restored = true
	close(b.stop)
	<-b.done

	w := b.writer
	w.mouseOff()
	w.focusOff()
	w.reset()
	w.cursorStyle(tcell.CursorStyleDefault)
	w.showCursor()
	w.autoWrapOn()

	// Leave the strip in place and put the shell prompt below it
	b.strip.moveTo(core.V2(0, b.height-1))
	w.text("\r\n")
	if err := w.flush(); err != nil {
		term.Restore(b.inFd, b.saved)
		return err
	}
	return term.Restore(b.inFd, b.saved)
}

func (b *inlineBackend) readLoop() {
	defer close(b.done)
	p := &parser{emit: b.send}
	buf := make([]byte, 256)
	for {
		select {
		case <-b.stop:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if n == 0 {
			p.idle()
			continue
		}

		rn, err := unix.Read(b.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return
		}
		if rn <= 0 {
			return
		}
		p.feed(buf[:rn])
	}
}

// send drops events when the channel is full rather than stalling the
// read loop
func (b *inlineBackend) send(ev tcell.Event) {
	select {
	case b.ch <- ev:
	default:
	}
}

// watchResize forwards SIGWINCH as resize events. The strip itself keeps
// its size; programs see the event and can redraw or bail out.
func (b *inlineBackend) watchResize() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)
	for {
		select {
		case <-b.stop:
			return
		case <-sig:
			cols, rows := terminalSize(b.outFd)
			b.send(tcell.NewEventResize(cols, rows))
		}
	}
}

func terminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
