package items

import (
	"github.com/ayn2op/widgetlist"
	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"
)

const tabSeparator = " " + widgetlist.BoxDrawingsLightVertical + " "

// Tabs is a bordered row of tab titles with one active tab.
type Tabs struct {
	*widgetlist.Box

	titles   []string
	active   int
	selected bool
}

func NewTabs(title string, titles ...string) *Tabs {
	box := widgetlist.NewBox().
		SetBorders(widgetlist.BordersAll).
		SetTitle(title).
		SetTitleAlignment(widgetlist.AlignmentLeft)
	return &Tabs{Box: box, titles: titles}
}

// SetActive activates the tab at index, clamped to the available tabs.
func (t *Tabs) SetActive(index int) *Tabs {
	t.active = min(max(index, 0), max(len(t.titles)-1, 0))
	return t
}

func (t *Tabs) Active() int {
	return t.active
}

// Count returns the number of tabs.
func (t *Tabs) Count() int {
	return len(t.titles)
}

func (t *Tabs) Height(int) int {
	return 1 + t.VerticalChrome()
}

// Highlight returns a copy with a focused border and the active tab marked.
func (t *Tabs) Highlight() widgetlist.Item {
	h := *t
	h.Box = t.Box.Clone()
	h.Box.SetBorderStyle(tcell.StyleDefault.Foreground(widgetlist.Styles.FocusedBorderColor))
	h.selected = true
	return &h
}

// cells returns the tab titles shortened so all of them fit into width, each
// getting an equal share.
func (t *Tabs) cells(width int) []string {
	if len(t.titles) == 0 || width <= 0 {
		return nil
	}
	separators := runewidth.StringWidth(tabSeparator) * (len(t.titles) - 1)
	share := max((width-separators)/len(t.titles), 1)

	cells := make([]string, len(t.titles))
	for i, title := range t.titles {
		cells[i] = runewidth.Truncate(title, share, widgetlist.SemigraphicsHorizontalEllipsis)
	}
	return cells
}

func (t *Tabs) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	normal := tcell.StyleDefault.Foreground(widgetlist.Styles.SecondaryTextColor)
	active := tcell.StyleDefault.Foreground(widgetlist.Styles.PrimaryTextColor).Bold(true)
	if t.selected {
		active = active.Reverse(true)
	}

	right := x + width
	for i, cell := range t.cells(width) {
		if i > 0 {
			_, printed := widgetlist.PrintWithStyle(screen, tabSeparator, x, y, right-x, widgetlist.AlignmentLeft, normal.Dim(true))
			x += printed
		}
		style := normal
		if i == t.active {
			style = active
		}
		_, printed := widgetlist.PrintWithStyle(screen, cell, x, y, right-x, widgetlist.AlignmentLeft, style)
		x += printed
		if x >= right {
			return
		}
	}
}
