package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/window"
)

func main() {
	var fps int
	flag.IntVar(&fps, "fps", 30, "Frames per second")
	flag.Parse()
	if fps < 1 {
		fps = 1
	}

	defer window.HandlePanics()

	win, err := window.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer win.Restore()

	// Pre-render once; wide glyphs and ZWJ clusters keep their cells
	content := "Normal: Hello World!\nWide: 👩‍👩‍👧‍👦 and 🚀\nMixed: a👩‍👩‍👧‍👦b🚀c"
	buf := render.Sized(render.Text{Content: content})
	size := buf.Size()

	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	pos := core.V2(0, 0)
	vel := core.V2(1, 1)
	frame := time.Second / time.Duration(fps)

	for {
		if err := win.Update(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		winSize := win.Size()

		pos = pos.Add(vel)
		if pos.X < 0 {
			pos.X = 0
			vel.X = -vel.X
		} else if pos.X+size.X >= winSize.X {
			pos.X = winSize.X - size.X
			vel.X = -vel.X
		}
		if pos.Y < 0 {
			pos.Y = 0
			vel.Y = -vel.Y
		} else if pos.Y+size.Y >= winSize.Y {
			pos.Y = winSize.Y - size.Y
			vel.Y = -vel.Y
		}

		render.Draw(win, pos, buf)
		render.Draw(win, core.V2(0, winSize.Y-2), render.Styled("Press `Enter` to exit!", red))

		if win.Key(tcell.KeyEnter) {
			break
		}
	}
}
