package items

import (
	"testing"

	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

type testScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]string
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{width: width, height: height, cells: make(map[[2]int]string)}
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	s.cells[[2]int{x, y}] = str
	return "", max(uniseg.StringWidth(str), 1)
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	return s.cells[[2]int{x, y}], tcell.StyleDefault, 1
}

// row returns the text written on row y between columns from and to.
func (s *testScreen) row(y, from, to int) string {
	var text string
	for x := from; x < to; x++ {
		text += s.cells[[2]int{x, y}]
	}
	return text
}

func TestText(t *testing.T) {
	text := NewText("hello world")

	t.Run("should grow with the wrapped text", func(t *testing.T) {
		assert.Equal(t, 1, text.Height(20))
		assert.Equal(t, 2, text.Height(5))
	})

	t.Run("should highlight a copy", func(t *testing.T) {
		h := text.Highlight()
		assert.NotSame(t, text, h)
		assert.Equal(t, widgetlist.Styles.ContrastBackgroundColor, h.(*Text).GetBackgroundColor())
		assert.Equal(t, widgetlist.Styles.PrimitiveBackgroundColor, text.GetBackgroundColor())
	})

	t.Run("should draw only the clipped rows", func(t *testing.T) {
		clip := text.Clip(1, 1)
		assert.Equal(t, 1, clip.Height(5))
		assert.Equal(t, 2, text.Height(5))

		screen := newTestScreen(10, 3)
		clip.SetRect(0, 0, 5, 1)
		clip.Draw(screen)
		assert.Equal(t, "world", screen.row(0, 0, 5))
	})
}

func TestCard(t *testing.T) {
	card := NewCard("Monday", "2 tasks", "laundry", "groceries")

	assert.Equal(t, "Monday", card.Title())
	assert.Equal(t, 2, card.Height(20))

	t.Run("should expand when highlighted", func(t *testing.T) {
		h := card.Highlight()
		assert.True(t, h.(*Card).Expanded())
		assert.False(t, card.Expanded())
		assert.Equal(t, 5, h.Height(20))
	})

	t.Run("should draw the rule and centered content", func(t *testing.T) {
		h := card.Highlight()
		screen := newTestScreen(10, 6)
		h.SetRect(0, 0, 10, 5)
		h.Draw(screen)

		assert.Equal(t, "Monday", screen.row(0, 0, 6))
		assert.Equal(t, widgetlist.BoxDrawingsLightHorizontal, screen.cells[[2]int{9, 1}])
		assert.Equal(t, "laundry", screen.row(2, 2, 9))
	})

	t.Run("should clip the expanded card", func(t *testing.T) {
		clip := card.Highlight().(*Card).Clip(2, 2)
		assert.Equal(t, 2, clip.Height(20))

		screen := newTestScreen(10, 3)
		clip.SetRect(0, 0, 10, 2)
		clip.Draw(screen)
		assert.Equal(t, "groceries", screen.row(1, 1, 10))
	})
}

func TestParagraph(t *testing.T) {
	p := NewParagraph("Notes", "hello world")

	assert.Equal(t, 3, p.Height(20))
	assert.Equal(t, 4, p.Height(7))
	assert.Equal(t, 6, p.SetHeight(6).Height(7))

	_, ok := widgetlist.Item(p).(widgetlist.Clipper)
	assert.False(t, ok)

	t.Run("should draw the text inside the border", func(t *testing.T) {
		screen := newTestScreen(20, 5)
		p.SetRect(0, 0, 20, 3)
		p.Draw(screen)
		assert.Equal(t, "hello world", screen.row(1, 1, 12))
		assert.Equal(t, widgetlist.BoxDrawingsLightArcDownAndRight, screen.cells[[2]int{0, 0}])
	})
}

func TestTabs(t *testing.T) {
	tabs := NewTabs("Views", "alpha", "beta", "gamma")

	assert.Equal(t, 3, tabs.Height(40))
	assert.Equal(t, 2, tabs.SetActive(7).Active())
	assert.Equal(t, 0, tabs.SetActive(-1).Active())

	t.Run("should shorten titles to an equal share", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, tabs.cells(21))
		assert.Equal(t, []string{"al…", "be…", "ga…"}, tabs.cells(15))
		assert.Nil(t, tabs.cells(0))
	})

	t.Run("should draw the titles separated", func(t *testing.T) {
		screen := newTestScreen(30, 3)
		h := tabs.Highlight()
		h.SetRect(0, 0, 23, 3)
		h.Draw(screen)
		assert.Equal(t, "alpha │ beta │ gamma", screen.row(1, 1, 21))
	})
}
