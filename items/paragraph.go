package items

import (
	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
)

// Paragraph is word-wrapped text inside a titled border. Its height is either
// fixed or follows the wrapped text.
//
// A paragraph has no clipped form: when it is cut off by the viewport, the
// list draws it in full and discards the rows outside.
type Paragraph struct {
	*widgetlist.Box

	text   string
	height int
	style  tcell.Style
}

func NewParagraph(title, text string) *Paragraph {
	box := widgetlist.NewBox().
		SetBorders(widgetlist.BordersAll).
		SetBorderSet(widgetlist.BorderSetRound()).
		SetTitle(title).
		SetTitleAlignment(widgetlist.AlignmentLeft)
	return &Paragraph{
		Box:   box,
		text:  text,
		style: tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor),
	}
}

// SetHeight fixes the height including the border. Zero or less lets the
// height follow the text.
func (p *Paragraph) SetHeight(height int) *Paragraph {
	p.height = height
	return p
}

func (p *Paragraph) Height(width int) int {
	if p.height > 0 {
		return p.height
	}
	inner := max(width-p.HorizontalChrome(), 1)
	return len(widgetlist.WordWrap(p.text, inner)) + p.VerticalChrome()
}

// Highlight returns a copy with a focused border on a stronger background.
func (p *Paragraph) Highlight() widgetlist.Item {
	h := *p
	h.Box = p.Box.Clone()
	h.Box.
		SetBorderStyle(tcell.StyleDefault.Foreground(widgetlist.Styles.FocusedBorderColor)).
		SetBackgroundColor(widgetlist.Styles.MoreContrastBackgroundColor)
	h.style = tcell.StyleDefault.Foreground(widgetlist.Styles.InverseTextColor)
	return &h
}

func (p *Paragraph) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)

	x, y, width, height := p.GetInnerRect()
	if width <= 0 {
		return
	}
	wrapped := widgetlist.WordWrap(p.text, width)
	lines := make([]line, len(wrapped))
	for i, text := range wrapped {
		lines[i] = line{text: text, style: p.style}
	}
	drawLines(screen, x, y, width, height, lines)
}
