package widgetlist

import "github.com/gdamore/tcell/v3"

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color will not be changed.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed runes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	return PrintWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color))
}

// PrintWithStyle works like [Print] but takes a full style. The style's
// background is ignored in favor of the background already on screen.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, true)
	return end - start, width
}

// printWithStyle prints text with a style. The skipWidth parameter specifies
// the number of cells skipped at the beginning of the text. It returns the
// start index, end index (exclusively), and screen width of the text actually
// printed. If maintainBackground is "true", the existing screen background is
// not changed.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	if maintainBackground {
		style = style.Background(tcell.ColorDefault)
	}

	// Skip beginning and measure width.
	var textWidth int
	state := &stepState{unisegState: -1}
	skipped := *state
	for rest := text; len(rest) > 0; {
		_, rest, state = step(rest, state)
		if skipWidth > 0 {
			skipWidth -= state.Width()
			text = rest
			skipped = *state
			start += state.GrossLength()
		} else {
			textWidth += state.Width()
		}
	}
	state = &skipped

	// Reduce all alignments to AlignmentLeft by chopping off the left side.
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		for excess := (textWidth - maxWidth) / 2; len(text) > 0 && excess > 0; {
			_, text, state = step(text, state)
			excess -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var cluster string
		cluster, text, state = step(text, state)
		if cluster == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}

		if width > 0 {
			cellStyle := style
			if maintainBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			// Wide clusters populate every cell they cover.
			for offset := width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", cellStyle)
			}
			screen.Put(x, y, cluster, cellStyle)
		}

		x += width
		end += state.GrossLength()
		printedWidth += width
	}

	return
}
