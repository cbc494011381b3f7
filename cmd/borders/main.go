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

func main() {
	defer window.HandlePanics()

	win, err := window.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer win.Restore()

	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	blue := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	cyan := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	slab := widgets.NewNineSlice([9]render.Cell{
		render.NewCell("╔", cyan), render.NewCell("═", cyan), render.NewCell("╗", cyan),
		render.NewCell("║", cyan), render.NewCell("░", cyan), render.NewCell("║", cyan),
		render.NewCell("╚", cyan), render.NewCell("═", cyan), render.NewCell("╝", cyan),
	}, core.V2(24, 6))

	spinner := widgets.NewSpinner()
	spinner.Style = yellow

	for {
		if err := win.Update(100 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if win.Key(tcell.KeyEnter) {
			break
		}
		spinner.Tick()

		render.Draw(win, core.V2(1, 0), "Border styles ", render.Styled("(press Enter to exit)", red))

		borders := []struct {
			at     core.Vec2
			border widgets.Border
			label  string
		}{
			{core.V2(1, 2), widgets.Square(18, 5).WithTitle("Square"), "plain"},
			{core.V2(21, 2), widgets.Rounded(18, 5).WithTitle("Rounded").WithStyle(green), "smooth"},
			{core.V2(41, 2), widgets.Thick(18, 5).WithTitle("Thick").WithStyle(yellow), "heavy"},
			{core.V2(61, 2), widgets.Double(18, 5).WithTitle("Double").WithStyle(blue), "twin"},
		}
		for _, b := range borders {
			inner := render.Draw(win, b.at, b.border)
			render.Draw(win, inner.Add(core.V2(1, 1)), b.label)
		}

		inner := render.Draw(win, core.V2(1, 8), slab)
		render.Draw(win, inner.Add(core.V2(2, 1)), render.Styled("nine-slice", cyan))

		render.Draw(win, core.V2(27, 8), widgets.NewVLine(6))
		render.Draw(win, core.V2(29, 8), "rules:")
		render.Draw(win, core.V2(29, 9), widgets.NewHLine(20))

		render.Draw(win, core.V2(29, 11), "working ", spinner)
		render.Draw(win, core.V2(29, 12), widgets.NewProgress(20, 0.65), " 65%")
	}
}
