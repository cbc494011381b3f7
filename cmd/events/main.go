package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/widgets"
	"github.com/asciiforge/forge/window"
)

const maxHistory = 12

func describe(ev tcell.Event) string {
	stamp := ev.When().Format("15:04:05.000")
	switch e := ev.(type) {
	case *tcell.EventKey:
		return fmt.Sprintf("%s  key    %s", stamp, e.Name())
	case *tcell.EventMouse:
		x, y := e.Position()
		return fmt.Sprintf("%s  mouse  buttons=%06b at (%d, %d)", stamp, e.Buttons(), x, y)
	case *tcell.EventResize:
		w, h := e.Size()
		return fmt.Sprintf("%s  resize %dx%d", stamp, w, h)
	case *tcell.EventFocus:
		return fmt.Sprintf("%s  focus  focused=%v", stamp, e.Focused)
	default:
		return fmt.Sprintf("%s  %T", stamp, ev)
	}
}

func main() {
	defer window.HandlePanics()

	win, err := window.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer win.Restore()

	bold := tcell.StyleDefault.Bold(true)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	history := make([]string, 0, maxHistory)

	for {
		if err := win.Update(50 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if win.Key(tcell.KeyCtrlC) {
			break
		}

		for _, ev := range win.Events() {
			history = append(history, describe(ev))
		}
		if len(history) > maxHistory {
			history = history[len(history)-maxHistory:]
		}

		mouse := win.MousePos()
		render.Draw(win, core.V2(0, 0), render.Styled("Event Visualizer", bold),
			fmt.Sprintf("   mouse (%d, %d)", mouse.X, mouse.Y))
		render.Draw(win, core.V2(0, 1), widgets.NewHLine(48))
		for i, line := range history {
			render.Draw(win, core.V2(0, 2+i), line)
		}
		render.Draw(win, core.V2(0, win.Size().Y-1), render.Styled("To quit, press Ctrl+C", red))
	}
}
