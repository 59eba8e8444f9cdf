// Package items provides ready-made list items: plain text, expandable cards,
// bordered paragraphs, and tab bars.
package items

import (
	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"
)

// line is a single row of item content.
type line struct {
	text  string
	style tcell.Style
	align widgetlist.Alignment
}

// window is the slice of rows a clipped item shows.
type window struct {
	hidden  int
	visible int
	clipped bool
}

// apply returns the rows of lines inside the window.
func (w window) apply(lines []line) []line {
	if !w.clipped {
		return lines
	}
	start := min(w.hidden, len(lines))
	end := min(start+w.visible, len(lines))
	return lines[start:end]
}

func (w window) height(full int) int {
	if w.clipped {
		return w.visible
	}
	return full
}

// drawLines prints one line per row, shortening lines that are too wide with
// an ellipsis.
func drawLines(screen tcell.Screen, x, y, width, height int, lines []line) {
	for row, l := range lines {
		if row >= height {
			return
		}
		text := l.text
		if runewidth.StringWidth(text) > width {
			text = runewidth.Truncate(text, width, widgetlist.SemigraphicsHorizontalEllipsis)
		}
		widgetlist.PrintWithStyle(screen, text, x, y+row, width, l.align, l.style)
	}
}
