package widgetlist

import (
	"github.com/ayn2op/widgetlist/keybind"
	"github.com/gdamore/tcell/v3"
)

// ListKeyMap holds the keybinds handled by a [List]. It implements the key map
// expected by the help primitive.
type ListKeyMap struct {
	Down       keybind.Keybind
	Up         keybind.Keybind
	Top        keybind.Keybind
	Bottom     keybind.Keybind
	PageDown   keybind.Keybind
	PageUp     keybind.Keybind
	ScrollDown keybind.Keybind
	ScrollUp   keybind.Keybind
	Select     keybind.Keybind
}

// DefaultListKeyMap returns the default list keybinds.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Down:       keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		Up:         keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Top:        keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g/home", "first")),
		Bottom:     keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G/end", "last")),
		PageDown:   keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")),
		PageUp:     keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")),
		ScrollDown: keybind.NewKeybind(keybind.WithKeys("ctrl+e"), keybind.WithHelp("^e", "scroll down")),
		ScrollUp:   keybind.NewKeybind(keybind.WithKeys("ctrl+y"), keybind.WithHelp("^y", "scroll up")),
		Select:     keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "select")),
	}
}

func (m ListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{m.Up, m.Down, m.Select}
}

func (m ListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{m.Up, m.Down, m.Top, m.Bottom},
		{m.PageUp, m.PageDown, m.ScrollUp, m.ScrollDown},
		{m.Select},
	}
}

type listRect struct {
	x, y, width, height int
}

// List displays a sequence of variable-height items and tracks a single
// selected item. Every draw lays the items out with [Layout], so the selected
// item is scrolled into view with as little movement as possible.
//
// The selected item is drawn in its highlighted form (see [Highlighter]).
// Items cut off at the top or bottom of the viewport are drawn in their
// clipped form (see [Clipper]) when truncation is enabled, and at full size
// behind a clipping screen otherwise.
type List struct {
	*Box

	items []Item
	state ListState

	truncate      bool
	showScrollBar bool
	scrollBar     *ScrollBar

	keyMap ListKeyMap

	changed  func(index int, item Item)
	selected func(index int, item Item)

	// Geometry and viewport of the last draw, used for mouse hit testing,
	// paging, and row scrolling.
	lastGeometry Geometry
	lastRect     listRect
}

// NewList returns a list of the given items with nothing selected.
func NewList(items ...Item) *List {
	l := &List{
		Box:       NewBox(),
		truncate:  true,
		scrollBar: NewScrollBar(),
		keyMap:    DefaultListKeyMap(),
	}
	l.SetItems(items)
	return l
}

// SetItems replaces all items. The selection and scroll position are clamped
// to the new items.
func (l *List) SetItems(items []Item) *List {
	l.items = append([]Item(nil), items...)
	l.state.Reconcile(len(l.items))
	l.lastGeometry = nil
	return l
}

// Items returns the items of the list.
func (l *List) Items() []Item {
	return l.items
}

// GetItemCount returns the number of items in the list.
func (l *List) GetItemCount() int {
	return len(l.items)
}

// SetTruncate sets whether partially visible items are drawn in their clipped
// form. It is enabled by default.
func (l *List) SetTruncate(truncate bool) *List {
	l.truncate = truncate
	return l
}

// SetScrollBar reserves the rightmost column for a scroll bar.
func (l *List) SetScrollBar(show bool) *List {
	l.showScrollBar = show
	return l
}

// ScrollBarPrimitive returns the scroll bar so it can be styled.
func (l *List) ScrollBarPrimitive() *ScrollBar {
	return l.scrollBar
}

// SetKeyMap sets the keybinds handled by the list.
func (l *List) SetKeyMap(keyMap ListKeyMap) *List {
	l.keyMap = keyMap
	return l
}

// KeyMap returns the keybinds handled by the list.
func (l *List) KeyMap() ListKeyMap {
	return l.keyMap
}

// SetChangedFunc sets a handler called when the selected item changes.
func (l *List) SetChangedFunc(handler func(index int, item Item)) *List {
	l.changed = handler
	return l
}

// SetSelectedFunc sets a handler called when the selected item is activated
// with the Select keybind or a double click.
func (l *List) SetSelectedFunc(handler func(index int, item Item)) *List {
	l.selected = handler
	return l
}

// Selected returns the index of the selected item or [NoSelection].
func (l *List) Selected() int {
	return l.state.Selected()
}

// SelectedItem returns the selected item, or nil.
func (l *List) SelectedItem() Item {
	if index := l.state.Selected(); index != NoSelection {
		return l.items[index]
	}
	return nil
}

// State returns a copy of the selection and scroll state.
func (l *List) State() ListState {
	return l.state
}

// Next selects the next item.
func (l *List) Next() *List {
	l.navigate(l.state.Next)
	return l
}

// Previous selects the previous item.
func (l *List) Previous() *List {
	l.navigate(l.state.Previous)
	return l
}

// First selects the first item.
func (l *List) First() *List {
	l.navigate(l.state.First)
	return l
}

// Last selects the last item.
func (l *List) Last() *List {
	l.navigate(l.state.Last)
	return l
}

// Select selects the item at index. An out-of-range index returns an error
// wrapping [ErrOutOfRange] and leaves the selection unchanged.
func (l *List) Select(index int) error {
	var err error
	l.navigate(func(count int) {
		err = l.state.Select(index, count)
	})
	return err
}

// ClearSelection removes the selection.
func (l *List) ClearSelection() *List {
	l.move(func(int) { l.state.Clear() })
	return l
}

// PageDown moves the selection down by about one viewport of rows.
func (l *List) PageDown() *List {
	l.navigate(func(count int) { l.page(count, 1) })
	return l
}

// PageUp moves the selection up by about one viewport of rows.
func (l *List) PageUp() *List {
	l.navigate(func(count int) { l.page(count, -1) })
	return l
}

// ScrollDown scrolls the view down by the given number of rows. If the
// selected item leaves the view, the first item fully in view is selected.
func (l *List) ScrollDown(lines int) *List {
	l.scroll(lines)
	return l
}

// ScrollUp scrolls the view up by the given number of rows. If the selected
// item leaves the view, the last item fully in view is selected.
func (l *List) ScrollUp(lines int) *List {
	l.scroll(-lines)
	return l
}

// Render lays out the items in a viewport of the given size and stores the
// repaired scroll anchor. It panics if an item reports a negative height, as
// that is a programming error in the item.
func (l *List) Render(width, height int) Geometry {
	heights, _ := l.measure(width)
	return l.layout(heights, height)
}

// Draw draws this primitive onto the screen.
func (l *List) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	l.lastGeometry = nil
	l.lastRect = listRect{x: x, y: y, width: width, height: height}
	if width <= 0 || height <= 0 {
		return
	}

	showScrollBar := l.showScrollBar && width > 1
	if showScrollBar {
		width--
		l.lastRect.width = width
	}

	heights, highlighted := l.measure(width)
	geometry := l.layout(heights, height)
	l.lastGeometry = geometry

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, p := range geometry {
		if p.Rows == 0 {
			continue
		}
		item := l.items[p.Index]
		if p.Index == l.state.Selected() {
			item = highlighted
		}
		l.drawItem(clipped, item, p, heights[p.Index], x, y, width)
	}

	if showScrollBar {
		var total int
		for _, h := range heights {
			total += h
		}
		l.scrollBar.SetLengths(total, height).SetOffset(rowOf(heights, l.state.Anchor()))
		l.scrollBar.SetRect(x+width, y, 1, height)
		l.scrollBar.Draw(screen)
	}
}

func (l *List) drawItem(screen tcell.Screen, item Item, p Placement, fullHeight, x, y, width int) {
	if l.truncate && (p.ClippedTop || p.ClippedBottom) {
		if clipper, ok := item.(Clipper); ok {
			if clip := clipper.Clip(p.Skip, p.Rows); clip != nil {
				clip.SetRect(x, y+p.Top, width, p.Rows)
				clip.Draw(screen)
				return
			}
		}
	}
	// The item is positioned so its visible rows line up with the placement;
	// the clipping screen drops whatever overhangs the viewport.
	item.SetRect(x, y+p.Top-p.Skip, width, fullHeight)
	item.Draw(screen)
}

// measure returns the heights of all items at the given width, measuring the
// selected item in its highlighted form, and that highlighted item.
func (l *List) measure(width int) ([]int, Item) {
	heights := make([]int, len(l.items))
	var highlighted Item
	selected := l.state.Selected()
	for index, item := range l.items {
		if index == selected {
			item = highlight(item)
			highlighted = item
		}
		heights[index] = item.Height(width)
	}
	return heights, highlighted
}

func (l *List) layout(heights []int, height int) Geometry {
	l.state.clampSkip(heights)
	geometry, anchor, err := Layout(heights, l.state.Selected(), l.state.Anchor(), height)
	if err != nil {
		panic(err)
	}
	l.state.anchor = anchor
	return geometry
}

// navigate applies a selection change made by the user. Landing on the item
// the view starts in reveals that item's first row.
func (l *List) navigate(change func(count int)) {
	previous := l.state.Selected()
	l.move(change)
	if current := l.state.Selected(); current != previous && current == l.state.anchor.Index {
		l.state.anchor.Skip = 0
	}
}

// move applies a selection change and notifies the changed handler.
func (l *List) move(change func(count int)) {
	previous := l.state.Selected()
	change(len(l.items))
	if current := l.state.Selected(); current != previous && l.changed != nil {
		var item Item
		if current != NoSelection {
			item = l.items[current]
		}
		l.changed(current, item)
	}
}

// page moves the selection by as many items as fit in the last viewport, and
// by at least one item.
func (l *List) page(count, direction int) {
	index := l.state.Selected()
	if count == 0 {
		return
	}
	if index == NoSelection {
		l.state.First(count)
		return
	}

	rows := max(l.lastRect.height, 1)
	heights, _ := l.measure(l.lastRect.width)
	target, used := index, 0
	for {
		next := target + direction
		if next < 0 || next >= count || used+heights[target] > rows {
			break
		}
		used += heights[target]
		target = next
	}
	if target == index {
		target = min(max(index+direction, 0), count-1)
	}
	l.state.set(target)
}

func (l *List) scroll(lines int) {
	width, height := l.lastRect.width, l.lastRect.height
	if height <= 0 || len(l.items) == 0 {
		return
	}

	heights, _ := l.measure(width)
	l.state.clampSkip(heights)
	l.state.Scroll(heights, lines, height)

	selected := l.state.Selected()
	if selected == NoSelection {
		return
	}
	view, _, err := Layout(heights, NoSelection, l.state.Anchor(), height)
	if err != nil {
		panic(err)
	}
	if p, ok := view.Find(selected); ok && !p.ClippedTop && !p.ClippedBottom {
		return
	}

	// Follow the view with the selection, preferring items shown in full.
	candidates := make([]Placement, 0, len(view))
	for _, p := range view {
		if p.Rows > 0 && !p.ClippedTop && !p.ClippedBottom {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = view
	}
	if len(candidates) == 0 {
		return
	}
	target := candidates[0].Index
	if lines < 0 {
		target = candidates[len(candidates)-1].Index
	}
	l.move(func(int) { l.state.set(target) })
}

// indexAt returns the index of the item drawn at the given screen position,
// or -1.
func (l *List) indexAt(x, y int) int {
	r := l.lastRect
	if x < r.x || x >= r.x+r.width || y < r.y || y >= r.y+r.height {
		return -1
	}
	return l.lastGeometry.IndexAt(y - r.y)
}

func (l *List) activate() {
	if index := l.state.Selected(); index != NoSelection && l.selected != nil {
		l.selected(index, l.items[index])
	}
}

// InputHandler returns the handler for this primitive.
func (l *List) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, l.keyMap.Down):
		l.Next()
	case keybind.Matches(event, l.keyMap.Up):
		l.Previous()
	case keybind.Matches(event, l.keyMap.Top):
		l.First()
	case keybind.Matches(event, l.keyMap.Bottom):
		l.Last()
	case keybind.Matches(event, l.keyMap.PageDown):
		l.PageDown()
	case keybind.Matches(event, l.keyMap.PageUp):
		l.PageUp()
	case keybind.Matches(event, l.keyMap.ScrollDown):
		l.ScrollDown(1)
	case keybind.Matches(event, l.keyMap.ScrollUp):
		l.ScrollUp(1)
	case keybind.Matches(event, l.keyMap.Select):
		l.activate()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler returns the mouse handler for this primitive.
func (l *List) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}
	return nil, l.handleMouse(action, x, y)
}

func (l *List) handleMouse(action MouseAction, x, y int) Command {
	switch action {
	case MouseLeftClick, MouseLeftDoubleClick:
		if index := l.indexAt(x, y); index >= 0 {
			_ = l.Select(index)
			if action == MouseLeftDoubleClick {
				l.activate()
			}
		}
		return AppendCommand(SetFocusCommand{Target: l}, RedrawCommand{})
	case MouseScrollUp:
		l.Previous()
		return RedrawCommand{}
	case MouseScrollDown:
		l.Next()
		return RedrawCommand{}
	}
	return nil
}

var _ Primitive = &List{}
