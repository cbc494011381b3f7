package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/layout"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/widgets"
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

	// Header / sidebar+main / footer grid, resolved fresh every frame so
	// resizing the terminal reflows everything
	grid := layout.New().
		Row(layout.Fixed(3), layout.Flexible()).
		Row(layout.Flexible(), layout.Fixed(20), layout.Flexible()).
		Row(layout.Fixed(2), layout.Flexible())

	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	magenta := tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta)
	cyan := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	bold := tcell.StyleDefault.Bold(true)

	for {
		if err := win.Update(200 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if win.Key(tcell.KeyEnter) {
			break
		}

		cells, err := grid.Calculated(win.Size())
		if err != nil {
			render.Draw(win, core.V2(0, 0), render.Styled(fmt.Sprintf("Layout error: %v", err), red))
			continue
		}
		header, _ := cells.At(0, 0)
		sidebar, _ := cells.At(1, 0)
		panel, _ := cells.At(1, 1)
		footer, _ := cells.At(2, 0)

		border := widgets.Double(header.Width, header.Height).
			WithTitle("Complex Application Header").WithStyle(yellow)
		inner := render.Draw(win, header.Position(), border)
		render.Draw(win, inner, render.Styled("A Multi-Column Layout Example (Not Interactive)", bold))

		border = widgets.Rounded(sidebar.Width, sidebar.Height).
			WithTitle("Nav").WithStyle(magenta)
		inner = render.Draw(win, sidebar.Position(), border)
		render.Draw(win, inner, render.Styled("Home", bold))
		render.Draw(win, inner.Add(core.V2(0, 1)), "Settings")
		render.Draw(win, inner.Add(core.V2(0, 2)), "Help")

		border = widgets.Square(panel.Width, panel.Height).
			WithTitle("Main Content Panel").WithStyle(green)
		inner = render.Draw(win, panel.Position(), border)
		render.Draw(win, inner, "This area is the main view.")
		render.Draw(win, inner.Add(core.V2(0, 1)), "It takes up all flexible space.")

		border = widgets.Thick(footer.Width, footer.Height).
			WithTitle("Status").WithStyle(cyan)
		inner = render.Draw(win, footer.Position(), border)
		render.Draw(win, inner.Add(core.V2(1, 0)), render.Styled("Press 'Enter' to exit.", red))
	}
}
