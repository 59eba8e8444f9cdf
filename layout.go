package widgetlist

import "fmt"

// Placement is the position of one item inside the viewport.
type Placement struct {
	// Index of the item in the list.
	Index int
	// Top is the first viewport row occupied by the item.
	Top int
	// Rows is the number of viewport rows occupied by the item.
	Rows int
	// Skip is the number of the item's rows hidden above the viewport. Only
	// the first placement can have a non-zero Skip.
	Skip int

	ClippedTop    bool
	ClippedBottom bool
}

// Geometry is the ordered list of placements computed by [Layout]. Placements
// are contiguous: each one starts where the previous one ends, beginning at
// row 0.
type Geometry []Placement

// Find returns the placement of the item at index, if it is visible.
func (g Geometry) Find(index int) (Placement, bool) {
	for _, p := range g {
		if p.Index == index {
			return p, true
		}
	}
	return Placement{}, false
}

// Rows returns the number of viewport rows covered by the geometry.
func (g Geometry) Rows() int {
	var rows int
	for _, p := range g {
		rows += p.Rows
	}
	return rows
}

// IndexAt returns the index of the item drawn at the given viewport row, or
// -1 if no item covers it.
func (g Geometry) IndexAt(row int) int {
	for _, p := range g {
		if row >= p.Top && row < p.Top+p.Rows {
			return p.Index
		}
	}
	return -1
}

// Layout computes which items are visible in a viewport of the given height.
// The heights must be measured with the selected item already highlighted.
//
// It first repairs the anchor so the selected item is visible: if the
// selection lies above the anchor, the view scrolls up to it; if it lies below
// the rows that fit, the anchor advances one item at a time until the
// selected item fits entirely, or until it is the anchor itself when it is
// taller than the viewport. It then packs items downward from the anchor until
// the viewport is full. The repaired anchor is returned so it can be kept for
// the next pass.
//
// Malformed input is reported as an error wrapping
// [ErrPreconditionViolation]. An empty list or a zero-height viewport yields
// an empty geometry and an unchanged anchor.
func Layout(heights []int, selected int, anchor Anchor, viewportHeight int) (Geometry, Anchor, error) {
	if err := validateLayout(heights, selected, anchor, viewportHeight); err != nil {
		return nil, anchor, err
	}
	if len(heights) == 0 || viewportHeight == 0 {
		return nil, anchor, nil
	}

	anchor = repairAnchor(heights, selected, anchor, viewportHeight)
	return pack(heights, anchor, viewportHeight), anchor, nil
}

func validateLayout(heights []int, selected int, anchor Anchor, viewportHeight int) error {
	if viewportHeight < 0 {
		return fmt.Errorf("%w: negative viewport height %d", ErrPreconditionViolation, viewportHeight)
	}
	for index, height := range heights {
		if height < 0 {
			return fmt.Errorf("%w: item %d has negative height %d", ErrPreconditionViolation, index, height)
		}
	}
	if selected != NoSelection && (selected < 0 || selected >= len(heights)) {
		return fmt.Errorf("%w: selected index %d outside %d items", ErrPreconditionViolation, selected, len(heights))
	}
	if len(heights) == 0 {
		return nil
	}
	if anchor.Index < 0 || anchor.Index >= len(heights) {
		return fmt.Errorf("%w: anchor index %d outside %d items", ErrPreconditionViolation, anchor.Index, len(heights))
	}
	if anchor.Skip < 0 || (anchor.Skip > 0 && anchor.Skip >= heights[anchor.Index]) {
		return fmt.Errorf("%w: anchor skips %d rows of item %d with height %d", ErrPreconditionViolation, anchor.Skip, anchor.Index, heights[anchor.Index])
	}
	return nil
}

func repairAnchor(heights []int, selected int, anchor Anchor, viewportHeight int) Anchor {
	switch {
	case selected == NoSelection:
		return anchor
	case selected < anchor.Index:
		return Anchor{Index: selected}
	case selected == anchor.Index:
		// An item taller than the viewport cannot be shown in full, so rows
		// scrolled past inside it stay hidden.
		if anchor.Skip > 0 && heights[selected] <= viewportHeight {
			return Anchor{Index: selected}
		}
		return anchor
	}

	// Rows taken by the anchor and the items between it and the selection.
	used := heights[anchor.Index] - anchor.Skip
	for _, height := range heights[anchor.Index+1 : selected] {
		used += height
	}

	target := heights[selected]
	for anchor.Index < selected && (used >= viewportHeight || used+target > viewportHeight) {
		used -= heights[anchor.Index] - anchor.Skip
		anchor = Anchor{Index: anchor.Index + 1}
	}
	return anchor
}

func pack(heights []int, anchor Anchor, viewportHeight int) Geometry {
	var geometry Geometry
	top, skip := 0, anchor.Skip
	for index := anchor.Index; index < len(heights) && top < viewportHeight; index++ {
		rest := heights[index] - skip
		rows := min(rest, viewportHeight-top)
		geometry = append(geometry, Placement{
			Index:         index,
			Top:           top,
			Rows:          rows,
			Skip:          skip,
			ClippedTop:    skip > 0,
			ClippedBottom: rows < rest,
		})
		top += rows
		skip = 0
	}
	return geometry
}
