package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/scene"
	"github.com/asciiforge/forge/widgets"
	"github.com/asciiforge/forge/window"
)

// askScene shows a centered dialog until the user picks yes or no, by key
// or by clicking a button.
type askScene struct {
	result *bool
}

func (s *askScene) Run(win *window.Window) (scene.Scene, error) {
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	box := core.V2(36, 7)

	for {
		if err := win.Update(50 * time.Millisecond); err != nil {
			return nil, err
		}

		size := win.Size()
		at := core.V2((size.X-box.X)/2, (size.Y-box.Y)/2)
		if at.X < 0 {
			at.X = 0
		}
		if at.Y < 0 {
			at.Y = 0
		}

		inner := render.Draw(win, at, widgets.Rounded(box.X, box.Y).WithTitle("Confirm").WithStyle(yellow))
		render.Draw(win, inner.Add(core.V2(2, 1)), "Are you sure? (y / n)")

		yesAt := inner.Add(core.V2(4, 3))
		noAt := inner.Add(core.V2(20, 3))
		yesHover := win.Hover(yesAt, core.V2(6, 0))
		noHover := win.Hover(noAt, core.V2(5, 0))

		render.Draw(win, yesAt, render.Styled("[ Yes ]", buttonStyle(yesHover)))
		render.Draw(win, noAt, render.Styled("[ No ]", buttonStyle(noHover)))

		clicked := win.Event(func(ev tcell.Event) bool {
			m, ok := ev.(*tcell.EventMouse)
			return ok && m.Buttons()&tcell.Button1 != 0
		})

		switch {
		case win.Rune('y'), win.Rune('Y'), clicked && yesHover:
			*s.result = true
			return &doneScene{yes: true}, nil
		case win.Rune('n'), win.Rune('N'), clicked && noHover:
			*s.result = false
			return &doneScene{yes: false}, nil
		}
	}
}

func buttonStyle(hover bool) tcell.Style {
	if hover {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault
}

// doneScene shows the choice until any key is pressed
type doneScene struct {
	yes bool
}

func (s *doneScene) Run(win *window.Window) (scene.Scene, error) {
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		if err := win.Update(100 * time.Millisecond); err != nil {
			return nil, err
		}

		choice := render.Styled("confirmed", green)
		if !s.yes {
			choice = render.Styled("declined", red)
		}
		render.Draw(win, core.V2(2, 1), "You ", choice, ".")
		render.Draw(win, core.V2(2, 3), "Press any key to exit.")

		pressed := win.Event(func(ev tcell.Event) bool {
			_, ok := ev.(*tcell.EventKey)
			return ok
		})
		if pressed {
			return nil, nil
		}
	}
}

func main() {
	defer window.HandlePanics()

	var yes bool
	if err := scene.Run(&askScene{result: &yes}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("State: %v\n", yes)
}
