package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/window"
)

var errCanceled = errors.New("input canceled")

// input runs a two-row inline prompt until the entered text parses.
// Enter accepts a valid value, Ctrl+C cancels.
func input[T any](parse func(string) (T, bool)) (T, error) {
	var zero T

	win, err := window.InitInline(2)
	if err != nil {
		return zero, err
	}
	defer win.Restore()

	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	win.SetCursorVisible(true)
	win.SetCursorStyle(tcell.CursorStyleBlinkingBar)

	var text []rune
	for {
		if err := win.Update(50 * time.Millisecond); err != nil {
			return zero, err
		}

		for _, ev := range win.Events() {
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch key.Key() {
			case tcell.KeyCtrlC:
				return zero, errCanceled
			case tcell.KeyEnter:
				if v, ok := parse(string(text)); ok {
					return v, nil
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(text) > 0 {
					text = text[:len(text)-1]
				}
			case tcell.KeyRune:
				text = append(text, key.Rune())
			}
		}

		status := render.Styled("-- Invalid --", red)
		if _, ok := parse(string(text)); ok {
			status = render.Styled("-- Valid --", green)
		}
		render.Draw(win, core.V2(0, 0), status)
		end := render.Draw(win, core.V2(0, 1), "> ", string(text))
		win.SetCursor(end)
	}
}

type email struct {
	prefix string
	suffix string
}

func (e email) String() string {
	if e.suffix == "" {
		return e.prefix
	}
	return e.prefix + "@" + e.suffix
}

func main() {
	defer window.HandlePanics()

	pattern := `^(?P<prefix>[\w\-.]+)@(?P<suffix>[\w-]+\.+[\w-]{2,4})$`
	flag.StringVar(&pattern, "pattern", pattern, "regular expression accepted emails must match")
	flag.Parse()

	emailRe, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parseEmail := func(text string) (email, bool) {
		m := emailRe.FindStringSubmatch(text)
		if m == nil {
			return email{}, false
		}
		e := email{prefix: text, suffix: ""}
		if i := emailRe.SubexpIndex("prefix"); i >= 0 {
			e.prefix = m[i]
		}
		if i := emailRe.SubexpIndex("suffix"); i >= 0 {
			e.suffix = m[i]
		}
		return e, true
	}

	fmt.Println("Input your age!")
	age, err := input(func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	if errors.Is(err, errCanceled) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Input your email!")
	addr, err := input(parseEmail)
	if errors.Is(err, errCanceled) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d, %s\n", age, addr)
}
