package widgetlist

// Item is a primitive that can be placed in a [List]. Items report their own
// height so the list can lay out variable-height content.
type Item interface {
	Primitive

	// Height returns the number of rows the item occupies at the given width
	// when it is drawn in full. It must not be negative and must not change
	// between two layout passes unless the item's content changed.
	Height(width int) int
}

// Highlighter is implemented by items that look different while selected.
// Highlight must not modify the receiver; the returned item may have a
// different height, for example to show expanded detail.
type Highlighter interface {
	Highlight() Item
}

// Clipper is implemented by items that can render a vertical slice of
// themselves. Clip returns an item whose height is visible and which shows
// the receiver's rows [hidden, hidden+visible).
//
// Items that don't implement Clipper are drawn at full height and clipped at
// the cell level instead.
type Clipper interface {
	Clip(hidden, visible int) Item
}

// highlight returns the highlighted variant of item, or item itself.
func highlight(item Item) Item {
	if h, ok := item.(Highlighter); ok {
		if highlighted := h.Highlight(); highlighted != nil {
			return highlighted
		}
	}
	return item
}
