package main

import (
	"flag"
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
	var (
		duration time.Duration
		height   int
	)
	flag.DurationVar(&duration, "duration", 3*time.Second, "Time the bar takes to fill")
	flag.IntVar(&height, "height", 2, "Lines reserved for the inline window")
	flag.Parse()

	defer window.HandlePanics()

	win, err := window.InitInline(height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	from := tcell.NewRGBColor(200, 60, 60)
	to := tcell.NewRGBColor(60, 200, 60)
	start := time.Now()

	for {
		if err := win.Update(16 * time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pct := float64(time.Since(start)) / float64(duration)
		if pct >= 1 {
			break
		}

		bar := widgets.NewProgress(win.Size().X, pct)
		bar.Full.Style = tcell.StyleDefault.Foreground(render.Lerp(from, to, pct))

		row := 0
		if win.Size().Y > 1 {
			render.Draw(win, core.V2(0, 0), fmt.Sprintf("Progress %3.0f%%", pct*100))
			row = 1
		}
		render.Draw(win, core.V2(0, row), bar)

		if win.Key(tcell.KeyCtrlC) {
			break
		}
	}

	if err := win.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Progress bar complete!")
}
