// Package help draws the keybinds of a key map as a one-line summary or as
// aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/widgetlist"
	"github.com/ayn2op/widgetlist/keybind"
	"github.com/gdamore/tcell/v3"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive listing the enabled keybinds of a key map.
type Help struct {
	*widgetlist.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            widgetlist.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       widgetlist.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	return h
}

func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	return h
}

func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Height returns the number of rows needed to show the help at the given
// width.
func (h *Help) Height(width int) int {
	return max(len(h.lines(width)), 1) + h.VerticalChrome()
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	for row, line := range h.lines(width) {
		if row >= height {
			break
		}
		line.draw(screen, x, y+row, width)
	}
}

// ShortHelpLine renders the short help as plain text.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	return h.short(bindings, maxWidth).String()
}

// FullHelpLines renders grouped help into full mode lines as plain text.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	var lines []string
	for _, line := range h.full(groups, maxWidth) {
		lines = append(lines, line.String())
	}
	return lines
}

func (h *Help) lines(width int) []spans {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.full(h.keyMap.FullHelp(), width)
	}
	if line := h.short(h.keyMap.ShortHelp(), width); len(line) > 0 {
		return []spans{line}
	}
	return nil
}

type span struct {
	text  string
	style tcell.Style
}

// spans is a line of styled text.
type spans []span

func (s spans) String() string {
	var b strings.Builder
	for _, sp := range s {
		b.WriteString(sp.text)
	}
	return b.String()
}

func (s spans) width() int {
	var width int
	for _, sp := range s {
		width += widgetlist.StringWidth(sp.text)
	}
	return width
}

func (s spans) draw(screen tcell.Screen, x, y, width int) {
	for _, sp := range s {
		if width <= 0 {
			return
		}
		if sp.text == "" {
			continue
		}
		_, printed := widgetlist.PrintWithStyle(screen, sp.text, x, y, width, widgetlist.AlignmentLeft, sp.style)
		x += printed
		width -= printed
	}
}

func (h *Help) short(bindings []keybind.Keybind, maxWidth int) spans {
	separator := span{text: orSpace(h.shortSeparator), style: h.Styles.ShortSeparatorStyle}

	var line spans
	for _, kb := range bindings {
		entry := h.shortEntry(kb)
		if len(entry) == 0 {
			continue
		}

		candidate := append(spans(nil), line...)
		if len(candidate) > 0 {
			candidate = append(candidate, separator)
		}
		candidate = append(candidate, entry...)
		if maxWidth > 0 && candidate.width() > maxWidth {
			if len(line) == 0 {
				return nil
			}
			return append(line, h.tail(line, maxWidth)...)
		}
		line = candidate
	}
	return line
}

func (h *Help) shortEntry(kb keybind.Keybind) spans {
	if !kb.Enabled() {
		return nil
	}
	key, desc := kb.Help().Key, kb.Help().Desc
	switch {
	case key == "" && desc == "":
		return nil
	case key == "":
		return spans{{text: desc, style: h.Styles.ShortDescStyle}}
	case desc == "":
		return spans{{text: key, style: h.Styles.ShortKeyStyle}}
	}
	return spans{
		{text: key, style: h.Styles.ShortKeyStyle},
		{text: " ", style: h.Styles.ShortDescStyle},
		{text: desc, style: h.Styles.ShortDescStyle},
	}
}

type column struct {
	entries  []keybind.Help
	keyWidth int
	width    int
}

func newColumn(group []keybind.Keybind) column {
	var c column
	for _, kb := range group {
		help := kb.Help()
		if !kb.Enabled() || (help.Key == "" && help.Desc == "") {
			continue
		}
		c.entries = append(c.entries, help)
		c.keyWidth = max(c.keyWidth, widgetlist.StringWidth(help.Key))
	}
	for _, e := range c.entries {
		width := c.keyWidth + widgetlist.StringWidth(e.Desc)
		if e.Key != "" && e.Desc != "" {
			width++
		}
		c.width = max(c.width, width)
	}
	return c
}

func (h *Help) full(groups [][]keybind.Keybind, maxWidth int) []spans {
	var columns []column
	for _, group := range groups {
		if c := newColumn(group); len(c.entries) > 0 {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return nil
	}

	separator := orSpace(h.fullSeparator)
	separatorWidth := widgetlist.StringWidth(separator)

	// Columns are taken left to right while they fit.
	var included, total, rows int
	for i, c := range columns {
		width := c.width
		if i > 0 {
			width += separatorWidth
		}
		if maxWidth > 0 && total+width > maxWidth {
			break
		}
		included++
		total += width
		rows = max(rows, len(c.entries))
	}
	if included == 0 {
		return []spans{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
	}

	lines := make([]spans, rows)
	for row := range lines {
		for i, c := range columns[:included] {
			if i > 0 {
				lines[row] = append(lines[row], span{text: separator, style: h.Styles.FullSeparatorStyle})
			}
			last := i == included-1
			lines[row] = append(lines[row], h.fullCell(c, row, last)...)
		}
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.tail(lines[0], maxWidth)...)
	}
	return lines
}

// fullCell renders one row of a column. Every column but the last is padded to
// its full width so the separators line up.
func (h *Help) fullCell(c column, row int, last bool) spans {
	if row >= len(c.entries) {
		return spans{{text: strings.Repeat(" ", c.width), style: h.Styles.FullDescStyle}}
	}

	e := c.entries[row]
	var cell spans
	if e.Key != "" {
		cell = append(cell, span{text: e.Key, style: h.Styles.FullKeyStyle})
	}
	if pad := c.keyWidth - widgetlist.StringWidth(e.Key); pad > 0 {
		cell = append(cell, span{text: strings.Repeat(" ", pad), style: h.Styles.FullKeyStyle})
	}
	if e.Key != "" && e.Desc != "" {
		cell = append(cell, span{text: " ", style: h.Styles.FullDescStyle})
	}
	if e.Desc != "" {
		cell = append(cell, span{text: e.Desc, style: h.Styles.FullDescStyle})
	}
	if pad := c.width - cell.width(); !last && pad > 0 {
		cell = append(cell, span{text: strings.Repeat(" ", pad), style: h.Styles.FullDescStyle})
	}
	return cell
}

// tail returns the truncation marker, or nothing if it doesn't fit after line.
func (h *Help) tail(line spans, maxWidth int) spans {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := spans{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if line.width()+tail.width() > maxWidth {
		return nil
	}
	return tail
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}
