package window

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// HandlePanics recovers a panic, resets the terminal and exits with the
// panic value and a stack trace. Defer it at the top of main:
//
//	defer window.HandlePanics()
func HandlePanics() {
	HandleCrash(recover())
}

// HandleCrash is HandlePanics for an already recovered value. A nil value
// does nothing.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyRestore(os.Stdout)
	resetTermios()

	// Raw mode may still be active, so every line needs an explicit \r
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mpanic: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "%s\r\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn on a new goroutine with crash protection, so a panic there
// still resets the terminal instead of dumping a stack over a raw screen.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// EmergencyRestore writes a best-effort terminal reset for when the window
// state is unknown: mouse and focus reporting off, cursor shown, alternate
// screen left, attributes cleared, autowrap back on.
func EmergencyRestore(w io.Writer) {
	io.WriteString(w, csiMouseOff)
	io.WriteString(w, csiFocusOff)
	io.WriteString(w, csiCursorShow)
	io.WriteString(w, csiAltScreenExit)
	io.WriteString(w, csiSGR0)
	io.WriteString(w, csiAutoWrapOn)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
