package widgetlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// clippedScreen discards every cell written outside its rectangle. The list
// draws items that don't implement [Clipper] through it, so an item that
// overhangs the viewport can draw at full height without leaking outside.
type clippedScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{Screen: screen, x: x, y: y, width: width, height: height}
}

func (s *clippedScreen) contains(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if s.contains(x, y) {
		s.Screen.SetContent(x, y, primary, combining, style)
	}
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.contains(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	graphemes := uniseg.NewGraphemes(str)
	for graphemes.Next() && x < s.x+s.width {
		cluster := graphemes.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		// Wide clusters straddling an edge are dropped entirely.
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.contains(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
