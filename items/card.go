package items

import (
	"strings"

	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
)

// Card shows a title and a one-line summary. When highlighted it expands to
// show its content lines below a rule.
type Card struct {
	*widgetlist.Box

	title    string
	summary  string
	content  []string
	expanded bool
	window   window
}

func NewCard(title, summary string, content ...string) *Card {
	return &Card{
		Box:     widgetlist.NewBox(),
		title:   title,
		summary: summary,
		content: content,
	}
}

func (c *Card) Title() string {
	return c.title
}

// Expanded reports whether the card shows its content.
func (c *Card) Expanded() bool {
	return c.expanded
}

func (c *Card) lines(width int) []line {
	titleStyle := tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor).Bold(true)
	if !c.expanded {
		return []line{
			{text: c.title, style: titleStyle},
			{text: c.summary, style: tcell.StyleDefault.Foreground(widgetlist.Styles.TertiaryTextColor)},
		}
	}

	titleStyle = titleStyle.Foreground(widgetlist.Styles.SecondaryTextColor)
	contentStyle := tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor)
	lines := make([]line, 0, len(c.content)+3)
	lines = append(lines,
		line{text: c.title, style: titleStyle},
		line{text: strings.Repeat(widgetlist.BoxDrawingsLightHorizontal, max(width, 0)), style: titleStyle.Bold(false)},
	)
	for _, text := range c.content {
		lines = append(lines, line{text: text, style: contentStyle, align: widgetlist.AlignmentCenter})
	}
	return append(lines, line{})
}

func (c *Card) Height(width int) int {
	return c.window.height(len(c.lines(width)))
}

// Highlight returns an expanded copy of the card.
func (c *Card) Highlight() widgetlist.Item {
	h := *c
	h.Box = c.Box.Clone()
	h.Box.SetBackgroundColor(widgetlist.Styles.ContrastBackgroundColor)
	h.expanded = true
	return &h
}

// Clip returns a copy showing only rows [hidden, hidden+visible).
func (c *Card) Clip(hidden, visible int) widgetlist.Item {
	clip := *c
	clip.Box = c.Box.Clone()
	clip.window = window{hidden: hidden, visible: visible, clipped: true}
	return &clip
}

func (c *Card) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	drawLines(screen, x, y, width, height, c.window.apply(c.lines(width)))
}
