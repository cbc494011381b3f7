package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/window"
)

func main() {
	defer window.HandlePanics()

	win, err := window.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer win.Restore()

	win.SetCursorVisible(true)
	win.SetCursorStyle(tcell.CursorStyleBlinkingBar)

	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	blue := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	magenta := tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		if err := win.Update(500 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		render.Draw(win, core.V2(0, 0), "Controls:")
		render.Draw(win, core.V2(0, 1), render.Styled("hjkl: Move Cursor", green))
		render.Draw(win, core.V2(0, 2), render.Styled("H: Toggle Cursor Visibility", blue))
		render.Draw(win, core.V2(0, 3), render.Styled("b/B: Change Cursor Style", magenta))
		render.Draw(win, core.V2(0, 4), render.Styled("q: Quit", red))

		switch {
		case win.Rune('q'):
			return
		case win.Rune('h'):
			win.MoveCursor(-1, 0)
		case win.Rune('l'):
			win.MoveCursor(1, 0)
		case win.Rune('j'):
			win.MoveCursor(0, 1)
		case win.Rune('k'):
			win.MoveCursor(0, -1)
		case win.Rune('H'):
			win.SetCursorVisible(!win.CursorVisible())
		case win.Rune('b'):
			win.SetCursorStyle(tcell.CursorStyleBlinkingBar)
		case win.Rune('B'):
			win.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
		}
	}
}
