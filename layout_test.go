package widgetlist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutScenarios(t *testing.T) {
	t.Run("should show the first items when the first item is selected", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{2, 2, 2, 2, 2}, 0, Anchor{}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 2},
			{Index: 1, Top: 2, Rows: 2},
		}, geometry)
	})

	t.Run("should scroll minimally when moving down past the bottom", func(t *testing.T) {
		heights := []int{2, 2, 2, 2, 2}
		var state ListState
		state.Next(len(heights))
		for range 3 {
			state.Next(len(heights))
		}
		require.Equal(t, 3, state.Selected())

		geometry, anchor, err := Layout(heights, state.Selected(), state.Anchor(), 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Index: 2}, anchor)
		assert.Equal(t, Geometry{
			{Index: 2, Top: 0, Rows: 2},
			{Index: 3, Top: 2, Rows: 2},
		}, geometry)
	})

	t.Run("should scroll one item at a time when stepping down", func(t *testing.T) {
		heights := []int{2, 2, 2, 2, 2}
		anchor := Anchor{}
		want := []Anchor{{Index: 0}, {Index: 0}, {Index: 1}, {Index: 2}, {Index: 3}}
		for selected := range heights {
			var err error
			_, anchor, err = Layout(heights, selected, anchor, 4)
			require.NoError(t, err)
			assert.Equal(t, want[selected], anchor, "selected %d", selected)
		}
	})

	t.Run("should clip an item taller than the viewport at the bottom", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{10}, 0, Anchor{}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 4, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should return an empty geometry for an empty list", func(t *testing.T) {
		for _, viewportHeight := range []int{0, 1, 10} {
			geometry, anchor, err := Layout(nil, NoSelection, Anchor{}, viewportHeight)
			require.NoError(t, err)
			assert.Empty(t, geometry)
			assert.Equal(t, Anchor{}, anchor)
		}
	})

	t.Run("should move the anchor to an expanded item that no longer fits", func(t *testing.T) {
		// Item 1 grows from 2 to 5 rows while highlighted.
		geometry, anchor, err := Layout([]int{2, 5, 2, 2}, 1, Anchor{}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Index: 1}, anchor)
		assert.Equal(t, Geometry{
			{Index: 1, Top: 0, Rows: 4, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should keep the anchor when an expanded item still fits", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{2, 5, 2, 2}, 1, Anchor{}, 8)
		require.NoError(t, err)

		assert.Equal(t, Anchor{}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 2},
			{Index: 1, Top: 2, Rows: 5},
			{Index: 2, Top: 7, Rows: 1, ClippedBottom: true},
		}, geometry)
	})
}

func TestLayoutAnchorRepair(t *testing.T) {
	t.Run("should scroll up to a selection above the anchor", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{2, 2, 2, 2, 2}, 1, Anchor{Index: 3}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Index: 1}, anchor)
		assert.Equal(t, Geometry{
			{Index: 1, Top: 0, Rows: 2},
			{Index: 2, Top: 2, Rows: 2},
		}, geometry)
	})

	t.Run("should reveal the top of a selected anchor item", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{3, 2}, 0, Anchor{Skip: 2}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 3},
			{Index: 1, Top: 3, Rows: 1, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should keep the hidden rows of a selected item taller than the viewport", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{10}, 0, Anchor{Skip: 3}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Skip: 3}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 4, Skip: 3, ClippedTop: true, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should keep a partially scrolled anchor without selection", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{5, 2}, NoSelection, Anchor{Skip: 2}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Skip: 2}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 3, Skip: 2, ClippedTop: true},
			{Index: 1, Top: 3, Rows: 1, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should account for the hidden rows of the anchor", func(t *testing.T) {
		// Three of the anchor's rows remain, so the selected item fits below it.
		geometry, anchor, err := Layout([]int{6, 1, 2}, 2, Anchor{Skip: 3}, 6)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Skip: 3}, anchor)
		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 3, Skip: 3, ClippedTop: true},
			{Index: 1, Top: 3, Rows: 1},
			{Index: 2, Top: 4, Rows: 2},
		}, geometry)
	})

	t.Run("should leave the anchor alone for a visible selection", func(t *testing.T) {
		_, anchor, err := Layout([]int{1, 1, 1, 1, 1, 1}, 3, Anchor{Index: 2}, 4)
		require.NoError(t, err)
		assert.Equal(t, Anchor{Index: 2}, anchor)
	})
}

func TestLayoutEdgeCases(t *testing.T) {
	t.Run("should keep zero-height items without advancing rows", func(t *testing.T) {
		geometry, _, err := Layout([]int{0, 2, 0, 2}, NoSelection, Anchor{}, 3)
		require.NoError(t, err)

		assert.Equal(t, Geometry{
			{Index: 0, Top: 0, Rows: 0},
			{Index: 1, Top: 0, Rows: 2},
			{Index: 2, Top: 2, Rows: 0},
			{Index: 3, Top: 2, Rows: 1, ClippedBottom: true},
		}, geometry)
	})

	t.Run("should keep a selected zero-height item inside the geometry", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{2, 2, 0, 2}, 2, Anchor{}, 4)
		require.NoError(t, err)

		assert.Equal(t, Anchor{Index: 1}, anchor)
		placement, ok := geometry.Find(2)
		require.True(t, ok)
		assert.Equal(t, Placement{Index: 2, Top: 2, Rows: 0}, placement)
	})

	t.Run("should return an empty geometry for a zero-height viewport", func(t *testing.T) {
		geometry, anchor, err := Layout([]int{2, 2, 2}, 2, Anchor{Index: 1}, 0)
		require.NoError(t, err)
		assert.Empty(t, geometry)
		assert.Equal(t, Anchor{Index: 1}, anchor)
	})

	t.Run("should stop packing when items run out", func(t *testing.T) {
		geometry, _, err := Layout([]int{1, 1}, 0, Anchor{}, 10)
		require.NoError(t, err)
		assert.Len(t, geometry, 2)
		assert.Equal(t, 2, geometry.Rows())
	})
}

func TestLayoutPreconditionViolations(t *testing.T) {
	tests := []struct {
		name           string
		heights        []int
		selected       int
		anchor         Anchor
		viewportHeight int
	}{
		{name: "negative viewport", heights: []int{1}, selected: 0, viewportHeight: -1},
		{name: "negative height", heights: []int{1, -2}, selected: 0, viewportHeight: 3},
		{name: "selected past the end", heights: []int{1, 1, 1}, selected: 5, viewportHeight: 3},
		{name: "selected below none", heights: []int{1, 1, 1}, selected: -2, viewportHeight: 3},
		{name: "selected in empty list", heights: nil, selected: 0, viewportHeight: 3},
		{name: "anchor past the end", heights: []int{1, 1, 1}, selected: NoSelection, anchor: Anchor{Index: 3}, viewportHeight: 3},
		{name: "negative anchor", heights: []int{1, 1, 1}, selected: NoSelection, anchor: Anchor{Index: -1}, viewportHeight: 3},
		{name: "negative skip", heights: []int{2}, selected: NoSelection, anchor: Anchor{Skip: -1}, viewportHeight: 3},
		{name: "skip past the anchor item", heights: []int{2, 2}, selected: NoSelection, anchor: Anchor{Skip: 2}, viewportHeight: 3},
		{name: "skip into a zero-height item", heights: []int{0, 2}, selected: NoSelection, anchor: Anchor{Skip: 1}, viewportHeight: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geometry, anchor, err := Layout(tt.heights, tt.selected, tt.anchor, tt.viewportHeight)
			require.ErrorIs(t, err, ErrPreconditionViolation)
			assert.Nil(t, geometry)
			assert.Equal(t, tt.anchor, anchor)
		})
	}
}

func TestLayoutProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for round := range 300 {
		count := 1 + r.IntN(12)
		heights := make([]int, count)
		for i := range heights {
			heights[i] = r.IntN(7)
		}
		viewportHeight := 1 + r.IntN(10)

		var state ListState
		for step := range 40 {
			before := state.Selected()
			stepped := true
			switch r.IntN(5) {
			case 0, 1:
				state.Next(count)
			case 2, 3:
				state.Previous(count)
			default:
				stepped = false
				require.NoError(t, state.Select(r.IntN(count), count))
			}
			selected := state.Selected()
			require.GreaterOrEqual(t, selected, 0)
			require.Less(t, selected, count)
			if stepped && before != NoSelection {
				require.LessOrEqual(t, absInt(selected-before), 1, "round %d step %d", round, step)
			}

			geometry, anchor, err := Layout(heights, selected, state.anchor, viewportHeight)
			require.NoError(t, err)
			state.anchor = anchor

			// Placements are contiguous from row 0 and fit the viewport.
			top := 0
			for _, p := range geometry {
				require.Equal(t, top, p.Top, "round %d step %d", round, step)
				require.GreaterOrEqual(t, p.Rows, 0)
				top += p.Rows
			}
			require.LessOrEqual(t, top, viewportHeight)

			placement, ok := geometry.Find(selected)
			require.True(t, ok, "round %d step %d: selected %d not visible", round, step, selected)
			if heights[selected] <= viewportHeight {
				assert.False(t, placement.ClippedTop, "round %d step %d", round, step)
				assert.False(t, placement.ClippedBottom, "round %d step %d", round, step)
			} else {
				assert.Equal(t, 0, placement.Top, "round %d step %d", round, step)
				assert.Equal(t, 0, placement.Skip, "round %d step %d", round, step)
			}

			again, anchorAgain, err := Layout(heights, selected, anchor, viewportHeight)
			require.NoError(t, err)
			require.Equal(t, geometry, again, "round %d step %d", round, step)
			require.Equal(t, anchor, anchorAgain, "round %d step %d", round, step)
		}
	}
}

func TestLayoutNavigationStepsByOne(t *testing.T) {
	heights := []int{3, 1, 4, 1, 5}
	var state ListState
	state.Next(len(heights))
	require.Equal(t, 0, state.Selected())

	for want := 1; want < len(heights); want++ {
		state.Next(len(heights))
		assert.Equal(t, want, state.Selected())
	}
	state.Next(len(heights))
	assert.Equal(t, 4, state.Selected())

	for want := 3; want >= 0; want-- {
		state.Previous(len(heights))
		assert.Equal(t, want, state.Selected())
	}
	state.Previous(len(heights))
	assert.Equal(t, 0, state.Selected())
}

func TestGeometry(t *testing.T) {
	geometry := Geometry{
		{Index: 4, Top: 0, Rows: 1, Skip: 2, ClippedTop: true},
		{Index: 5, Top: 1, Rows: 0},
		{Index: 6, Top: 1, Rows: 3, ClippedBottom: true},
	}

	assert.Equal(t, 4, geometry.Rows())
	assert.Equal(t, 4, geometry.IndexAt(0))
	assert.Equal(t, 6, geometry.IndexAt(1))
	assert.Equal(t, 6, geometry.IndexAt(3))
	assert.Equal(t, -1, geometry.IndexAt(4))
	assert.Equal(t, -1, geometry.IndexAt(-1))

	placement, ok := geometry.Find(5)
	require.True(t, ok)
	assert.Equal(t, 1, placement.Top)

	_, ok = geometry.Find(7)
	assert.False(t, ok)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
