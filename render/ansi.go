package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/ansi"

	"github.com/asciiforge/forge/core"
)

// Ansi is a text element that interprets embedded SGR escape sequences, so
// output pre-styled by other tools keeps its colors and attributes.
// Non-SGR escape sequences are dropped.
type Ansi string

// Draw implements Element
func (a Ansi) Draw(dst *Buffer, at core.Vec2) core.Vec2 {
	loc := at
	style := tcell.StyleDefault
	s := string(a)
	for len(s) > 0 {
		if s[0] == 0x1b {
			params, isSGR, n := scanEscape(s)
			if isSGR {
				style = applySGR(style, params)
			}
			s = s[n:]
			continue
		}
		chunk := s
		if i := strings.IndexByte(s, 0x1b); i >= 0 {
			chunk = s[:i]
		}
		s = s[len(chunk):]
		for i, line := range strings.Split(chunk, "\n") {
			if i > 0 {
				loc.Y++
				loc.X = at.X
			}
			loc = drawLine(dst, loc, line, style)
		}
	}
	return loc
}

// Width returns the display width of the widest line, escapes excluded
func (a Ansi) Width() int {
	w := 0
	for _, line := range strings.Split(string(a), "\n") {
		if lw := ansi.PrintableRuneWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// scanEscape consumes one escape sequence at the start of s, reporting the
// parameter string when the sequence is an SGR (CSI ... m)
func scanEscape(s string) (params string, isSGR bool, n int) {
	if len(s) < 2 {
		return "", false, len(s)
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if c := s[i]; c >= 0x40 && c <= 0x7e {
				return s[2:i], c == 'm', i + 1
			}
		}
		return "", false, len(s)
	case ']':
		// OSC, terminated by BEL or ST
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return "", false, i + 1
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return "", false, i + 2
			}
		}
		return "", false, len(s)
	default:
		return "", false, 2
	}
}

func applySGR(style tcell.Style, params string) tcell.Style {
	if params == "" {
		return tcell.StyleDefault
	}
	codes := strings.Split(params, ";")
	for i := 0; i < len(codes); i++ {
		n, err := strconv.Atoi(codes[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			style = tcell.StyleDefault
		case n == 1:
			style = style.Bold(true)
		case n == 2:
			style = style.Dim(true)
		case n == 3:
			style = style.Italic(true)
		case n == 4:
			style = style.Underline(true)
		case n == 5:
			style = style.Blink(true)
		case n == 7:
			style = style.Reverse(true)
		case n == 9:
			style = style.StrikeThrough(true)
		case n == 22:
			style = style.Bold(false).Dim(false)
		case n == 23:
			style = style.Italic(false)
		case n == 24:
			style = style.Underline(false)
		case n == 25:
			style = style.Blink(false)
		case n == 27:
			style = style.Reverse(false)
		case n == 29:
			style = style.StrikeThrough(false)
		case n >= 30 && n <= 37:
			style = style.Foreground(tcell.PaletteColor(n - 30))
		case n == 39:
			style = style.Foreground(tcell.ColorDefault)
		case n >= 40 && n <= 47:
			style = style.Background(tcell.PaletteColor(n - 40))
		case n == 49:
			style = style.Background(tcell.ColorDefault)
		case n >= 90 && n <= 97:
			style = style.Foreground(tcell.PaletteColor(n - 90 + 8))
		case n >= 100 && n <= 107:
			style = style.Background(tcell.PaletteColor(n - 100 + 8))
		case n == 38 || n == 48:
			c, used := extendedColor(codes[i+1:])
			if used == 0 {
				return style
			}
			if n == 38 {
				style = style.Foreground(c)
			} else {
				style = style.Background(c)
			}
			i += used
		}
	}
	return style
}

// extendedColor parses the 5;n and 2;r;g;b color forms, reporting how many
// parameter codes it consumed
func extendedColor(codes []string) (tcell.Color, int) {
	if len(codes) == 0 {
		return tcell.ColorDefault, 0
	}
	switch codes[0] {
	case "5":
		if len(codes) < 2 {
			return tcell.ColorDefault, 0
		}
		n, err := strconv.Atoi(codes[1])
		if err != nil || n < 0 || n > 255 {
			return tcell.ColorDefault, 0
		}
		return tcell.PaletteColor(n), 2
	case "2":
		if len(codes) < 4 {
			return tcell.ColorDefault, 0
		}
		var rgb [3]int32
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(codes[1+i])
			if err != nil || n < 0 || n > 255 {
				return tcell.ColorDefault, 0
			}
			rgb[i] = int32(n)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), 4
	}
	return tcell.ColorDefault, 0
}
