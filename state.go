package widgetlist

import "fmt"

// NoSelection is returned by [ListState.Selected] when no item is selected.
const NoSelection = -1

// Anchor is the scroll position of a list: the first item considered for
// layout and the number of its rows hidden above the viewport.
type Anchor struct {
	Index int
	Skip  int
}

// ListState holds the selected item and the scroll anchor of a list. The zero
// value has nothing selected and is scrolled to the top.
//
// Navigation never moves the anchor. The anchor is brought in line with the
// selection by the next [Layout] pass.
type ListState struct {
	selected     int
	hasSelection bool
	anchor       Anchor
}

// Selected returns the selected index or NoSelection.
func (s ListState) Selected() int {
	if !s.hasSelection {
		return NoSelection
	}
	return s.selected
}

// Anchor returns the current scroll anchor.
func (s ListState) Anchor() Anchor {
	return s.anchor
}

// Next selects the item after the selected one, stopping at the last item. If
// nothing is selected, the first item is selected. It is a no-op for an empty
// list.
func (s *ListState) Next(count int) {
	if count <= 0 {
		return
	}
	if !s.hasSelection {
		s.set(0)
		return
	}
	s.set(min(s.selected+1, count-1))
}

// Previous selects the item before the selected one, stopping at the first
// item. If nothing is selected, the first item is selected. It is a no-op for
// an empty list.
func (s *ListState) Previous(count int) {
	if count <= 0 {
		return
	}
	if !s.hasSelection {
		s.set(0)
		return
	}
	s.set(min(max(s.selected-1, 0), count-1))
}

// First selects the first item.
func (s *ListState) First(count int) {
	if count > 0 {
		s.set(0)
	}
}

// Last selects the last item.
func (s *ListState) Last(count int) {
	if count > 0 {
		s.set(count - 1)
	}
}

// Select selects the item at index. It returns an error wrapping
// [ErrOutOfRange] and leaves the state untouched if index is not in
// [0, count).
func (s *ListState) Select(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: cannot select %d in a list of %d items", ErrOutOfRange, index, count)
	}
	s.set(index)
	return nil
}

// Clear removes the selection. The scroll position is kept.
func (s *ListState) Clear() {
	s.hasSelection = false
	s.selected = 0
}

// Reconcile adapts the state to a replaced sequence of count items. The
// selection and anchor are clamped to the new bounds and the anchor's row
// offset is reset, since it referred to an item that may have been replaced.
func (s *ListState) Reconcile(count int) {
	if count <= 0 {
		*s = ListState{}
		return
	}
	if s.hasSelection && s.selected >= count {
		s.selected = count - 1
	}
	s.anchor.Index = min(max(s.anchor.Index, 0), count-1)
	s.anchor.Skip = 0
}

// Scroll moves the anchor by the given number of rows, positive values
// scrolling down. Scrolling stops at the top of the first item and once the
// last item's bottom row reaches the bottom of the viewport.
func (s *ListState) Scroll(heights []int, lines, viewportHeight int) {
	if len(heights) == 0 || viewportHeight <= 0 || lines == 0 {
		return
	}
	if s.anchor.Index < 0 || s.anchor.Index >= len(heights) {
		return
	}

	var total int
	for _, height := range heights {
		total += max(height, 0)
	}

	row := rowOf(heights, s.anchor)
	target := row + lines
	if lines > 0 {
		// Never pull the view up when scrolling down, even if it already shows
		// less than a full viewport.
		target = min(target, max(total-viewportHeight, row))
	} else {
		target = max(target, 0)
	}

	if anchor, ok := anchorAt(heights, target); ok {
		s.anchor = anchor
	}
}

// clampSkip keeps the anchor's row offset inside the anchor item after the
// item's height changed, for example because the highlight moved away from it.
func (s *ListState) clampSkip(heights []int) {
	if s.anchor.Index < 0 || s.anchor.Index >= len(heights) {
		return
	}
	if height := heights[s.anchor.Index]; s.anchor.Skip > 0 && s.anchor.Skip >= height {
		s.anchor.Skip = max(height-1, 0)
	}
}

func (s *ListState) set(index int) {
	s.selected = index
	s.hasSelection = true
}

// rowOf returns the absolute row at the top of the viewport for the anchor.
func rowOf(heights []int, anchor Anchor) int {
	row := anchor.Skip
	for _, height := range heights[:anchor.Index] {
		row += max(height, 0)
	}
	return row
}

// anchorAt returns the anchor whose top row is the given absolute row.
// Zero-height items never contain a row and are passed over.
func anchorAt(heights []int, row int) (Anchor, bool) {
	if row < 0 {
		return Anchor{}, false
	}
	var start int
	for index, height := range heights {
		height = max(height, 0)
		if row < start+height {
			return Anchor{Index: index, Skip: row - start}, true
		}
		start += height
	}
	return Anchor{}, false
}
