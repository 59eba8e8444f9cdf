package demo

import (
	"log/slog"
	"strings"

	"github.com/ayn2op/widgetlist"
	"github.com/ayn2op/widgetlist/help"
	"github.com/ayn2op/widgetlist/internal/config"
	"github.com/ayn2op/widgetlist/items"
	"github.com/ayn2op/widgetlist/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap holds the demo keybinds on top of the list keybinds.
type KeyMap struct {
	List widgetlist.ListKeyMap

	Filter      keybind.Keybind
	ClearFilter keybind.Keybind
	AcceptInput keybind.Keybind
	Backspace   keybind.Keybind
	ToggleHelp  keybind.Keybind
	Quit        keybind.Keybind
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		List:        widgetlist.DefaultListKeyMap(),
		Filter:      keybind.NewKeybind(keybind.WithKeys("/"), keybind.WithHelp("/", "filter")),
		ClearFilter: keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "clear filter"), keybind.WithDisabled()),
		AcceptInput: keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "apply filter"), keybind.WithDisabled()),
		Backspace:   keybind.NewKeybind(keybind.WithKeys("backspace")),
		ToggleHelp:  keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "more")),
		Quit:        keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

func (m KeyMap) ShortHelp() []keybind.Keybind {
	return append(m.List.ShortHelp(), m.Filter, m.ClearFilter, m.AcceptInput, m.ToggleHelp, m.Quit)
}

func (m KeyMap) FullHelp() [][]keybind.Keybind {
	return append(m.List.FullHelp(), []keybind.Keybind{m.Filter, m.ClearFilter, m.AcceptInput, m.ToggleHelp, m.Quit})
}

// View is the root primitive of the demo: the list above a help bar. Pressing
// the Filter key starts typing a fuzzy filter query shown in the list footer.
type View struct {
	*widgetlist.Box

	list   *widgetlist.List
	help   *help.Help
	keyMap KeyMap
	logger *slog.Logger

	entries []entry
	query   string
	editing bool
}

func NewView(cfg config.Config, logger *slog.Logger) *View {
	v := &View{
		Box:    widgetlist.NewBox().SetDontClear(true),
		list:   widgetlist.NewList(),
		help:   help.New(),
		keyMap: DefaultKeyMap(),
		logger: logger,
	}
	v.list.
		SetChangedFunc(v.onChanged).
		SetSelectedFunc(v.onSelected).
		SetBorders(widgetlist.BordersAll).
		SetTitleAlignment(widgetlist.AlignmentLeft).
		SetFooterAlignment(widgetlist.AlignmentLeft)
	v.help.SetKeyMap(&v.keyMap)
	v.SetConfig(cfg)
	return v
}

// List returns the list primitive.
func (v *View) List() *widgetlist.List {
	return v.list
}

// Query returns the current filter query.
func (v *View) Query() string {
	return v.query
}

// SetConfig replaces the items and list settings. The filter query is kept
// and applied to the new items.
func (v *View) SetConfig(cfg config.Config) {
	v.entries = buildEntries(cfg)
	v.list.
		SetTruncate(cfg.TruncateEnabled()).
		SetScrollBar(cfg.ScrollBar)
	v.list.SetTitle(cfg.Title)
	if borderSet, ok := widgetlist.BorderSetByName(cfg.Border); ok {
		v.list.SetBorderSet(borderSet)
	} else {
		v.logger.Warn("unknown border set", "border", cfg.Border)
	}
	v.applyFilter()
	v.logger.Info("items loaded", "count", len(v.entries), "shown", v.list.GetItemCount())
}

// SetQuery sets the filter query and filters the items.
func (v *View) SetQuery(query string) {
	v.query = query
	v.applyFilter()
}

func (v *View) applyFilter() {
	v.list.SetItems(filter(v.entries, v.query))
	v.keyMap.ClearFilter.SetEnabled(v.query != "" || v.editing)
	v.keyMap.AcceptInput.SetEnabled(v.editing)
	v.keyMap.Filter.SetEnabled(!v.editing)

	switch {
	case v.editing:
		v.list.SetFooter("/" + v.query + "_")
	case v.query != "":
		v.list.SetFooter("/" + v.query)
	default:
		v.list.SetFooter("")
	}
}

func (v *View) startFilter() {
	v.editing = true
	v.applyFilter()
}

func (v *View) stopFilter(clear bool) {
	v.editing = false
	if clear {
		v.query = ""
	}
	v.applyFilter()
}

func (v *View) onChanged(index int, item widgetlist.Item) {
	v.logger.Debug("selection changed", "index", index)
}

// onSelected cycles the active tab of a tabs item.
func (v *View) onSelected(index int, item widgetlist.Item) {
	v.logger.Info("item activated", "index", index)
	if tabs, ok := item.(*items.Tabs); ok {
		tabs.SetActive((tabs.Active() + 1) % max(tabs.Count(), 1))
	}
}

func (v *View) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	helpHeight := min(v.help.Height(width), height)
	v.list.SetRect(x, y, width, height-helpHeight)
	v.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	v.list.Draw(screen)
	v.help.Draw(screen)
}

func (v *View) InputHandler(event *tcell.EventKey) widgetlist.Command {
	if v.editing {
		return v.handleEditing(event)
	}

	switch {
	case keybind.Matches(event, v.keyMap.Quit):
		return widgetlist.QuitCommand{}
	case keybind.Matches(event, v.keyMap.Filter):
		v.startFilter()
	case keybind.Matches(event, v.keyMap.ClearFilter):
		v.stopFilter(true)
	case keybind.Matches(event, v.keyMap.ToggleHelp):
		v.help.SetShowAll(!v.help.ShowAll())
	default:
		return v.list.InputHandler(event)
	}
	return widgetlist.RedrawCommand{}
}

func (v *View) handleEditing(event *tcell.EventKey) widgetlist.Command {
	switch {
	case keybind.Matches(event, v.keyMap.ClearFilter):
		v.stopFilter(true)
	case keybind.Matches(event, v.keyMap.AcceptInput):
		v.stopFilter(false)
	case keybind.Matches(event, v.keyMap.Backspace):
		v.backspace()
	case event.Key() == tcell.KeyRune:
		v.SetQuery(v.query + event.Str())
	default:
		return v.list.InputHandler(event)
	}
	return widgetlist.RedrawCommand{}
}

func (v *View) backspace() {
	if v.query == "" {
		return
	}
	runes := []rune(v.query)
	v.SetQuery(string(runes[:len(runes)-1]))
}

// PasteHandler appends pasted text to the filter query while it is edited.
func (v *View) PasteHandler(text string) widgetlist.Command {
	if !v.editing {
		return nil
	}
	v.SetQuery(v.query + strings.Join(strings.Fields(text), " "))
	return widgetlist.RedrawCommand{}
}

func (v *View) MouseHandler(action widgetlist.MouseAction, event *tcell.EventMouse) (widgetlist.Primitive, widgetlist.Command) {
	return v.list.MouseHandler(action, event)
}

// HasFocus reports whether the view or the list inside it has focus.
func (v *View) HasFocus() bool {
	return v.Box.HasFocus() || v.list.HasFocus()
}

var _ widgetlist.Primitive = &View{}
