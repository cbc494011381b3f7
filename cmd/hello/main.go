package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

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

	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	// Pre-styled ANSI strings from other tools render as-is
	pre := termenv.String("green").Foreground(termenv.ANSIGreen).String() +
		" and " +
		termenv.String("bold blue").Foreground(termenv.ANSIBlue).Bold().String()

	for {
		if err := win.Update(200 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		render.Draw(win, core.V2(0, 0), "Hello World!")
		render.Draw(win, core.V2(0, 1), render.Styled("Press `Enter` to exit!", red))
		render.Draw(win, core.V2(0, 2),
			render.Styled("Render ", red),
			render.Styled("Multiple ", yellow),
			"Elements ",
			"In one go!",
		)
		render.Draw(win, core.V2(0, 4), render.Ansi("Pre-colored output works too: "+pre))

		if win.Key(tcell.KeyEnter) {
			break
		}
	}
}
