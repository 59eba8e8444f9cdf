package items

import (
	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
)

// Text is word-wrapped plain text. It grows as tall as the wrapped text needs.
type Text struct {
	*widgetlist.Box

	text           string
	style          tcell.Style
	highlightStyle tcell.Style
	window         window
}

func NewText(text string) *Text {
	return &Text{
		Box:            widgetlist.NewBox(),
		text:           text,
		style:          tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor),
		highlightStyle: tcell.StyleDefault.Foreground(widgetlist.Styles.InverseTextColor).Bold(true),
	}
}

// Text returns the unwrapped text.
func (t *Text) Text() string {
	return t.text
}

func (t *Text) SetStyle(style tcell.Style) *Text {
	t.style = style
	return t
}

func (t *Text) SetHighlightStyle(style tcell.Style) *Text {
	t.highlightStyle = style
	return t
}

func (t *Text) lines(width int) []line {
	wrapped := widgetlist.WordWrap(t.text, width)
	lines := make([]line, len(wrapped))
	for i, text := range wrapped {
		lines[i] = line{text: text, style: t.style}
	}
	return lines
}

func (t *Text) Height(width int) int {
	return t.window.height(len(t.lines(width)))
}

// Highlight returns a copy drawn with the highlight style on a contrasting
// background.
func (t *Text) Highlight() widgetlist.Item {
	h := *t
	h.Box = t.Box.Clone()
	h.Box.SetBackgroundColor(widgetlist.Styles.ContrastBackgroundColor)
	h.style = t.highlightStyle
	return &h
}

// Clip returns a copy showing only rows [hidden, hidden+visible).
func (t *Text) Clip(hidden, visible int) widgetlist.Item {
	c := *t
	c.Box = t.Box.Clone()
	c.window = window{hidden: hidden, visible: visible, clipped: true}
	return &c
}

func (t *Text) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	drawLines(screen, x, y, width, height, t.window.apply(t.lines(width)))
}
