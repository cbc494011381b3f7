package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal columns
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most max columns, appending … when cut
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return cut(s, max-1) + "…"
}

// PadRight pads s with spaces to the given column width
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft left-pads s with spaces to the given column width
func PadLeft(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// Center centers s within the given column width, extra space on the right
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Wrap wraps s at word boundaries to fit width columns per line. Words
// wider than a full line break mid-word. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line, w := "", 0
	for _, word := range words {
		for Width(word) > width {
			head := cut(word, width)
			if head == "" {
				break
			}
			if w > 0 {
				lines = append(lines, line)
				line, w = "", 0
			}
			lines = append(lines, head)
			word = word[len(head):]
		}

		ww := Width(word)
		switch {
		case w == 0:
			line, w = word, ww
		case w+1+ww <= width:
			line, w = line+" "+word, w+1+ww
		default:
			lines = append(lines, line)
			line, w = word, ww
		}
	}
	return append(lines, line)
}

// cut returns the longest prefix of s at most max columns wide, never
// splitting a grapheme cluster
func cut(s string, max int) string {
	var b strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if w+cw > max {
			break
		}
		b.WriteString(g.Str())
		w += cw
	}
	return b.String()
}
