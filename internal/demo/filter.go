package demo

import (
	"slices"
	"strings"

	"github.com/ayn2op/widgetlist"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type scored struct {
	entry
	rank int
}

// filter returns the items matching query, best matches first. Items with
// equal rank keep their order. An empty query returns every item.
func filter(entries []entry, query string) []widgetlist.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]widgetlist.Item, len(entries))
		for i, e := range entries {
			out[i] = e.item
		}
		return out
	}

	var matches []scored
	for _, e := range entries {
		if rank := fuzzy.RankMatchNormalizedFold(query, e.text); rank >= 0 {
			matches = append(matches, scored{entry: e, rank: rank})
		}
	}
	// Lower ranks are closer matches.
	slices.SortStableFunc(matches, func(a, b scored) int {
		return a.rank - b.rank
	})

	out := make([]widgetlist.Item, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}
