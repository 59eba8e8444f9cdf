// Package demo assembles the demo application: a filterable list of the
// items from the item file and a help bar.
package demo

import (
	"strings"

	"github.com/ayn2op/widgetlist"
	"github.com/ayn2op/widgetlist/internal/config"
	"github.com/ayn2op/widgetlist/items"
)

// entry is a built item together with the text the filter matches against.
type entry struct {
	item widgetlist.Item
	text string
}

// Build creates the list item described by item.
func Build(item config.Item) widgetlist.Item {
	switch item.Kind {
	case config.KindCard:
		return items.NewCard(item.Title, item.Text, item.Lines...)
	case config.KindParagraph:
		return items.NewParagraph(item.Title, item.Text).SetHeight(item.Height)
	case config.KindTabs:
		return items.NewTabs(item.Title, item.Tabs...)
	default:
		text := item.Text
		if len(item.Lines) > 0 {
			text = strings.Join(append([]string{text}, item.Lines...), "\n")
		}
		return items.NewText(text)
	}
}

func buildEntries(cfg config.Config) []entry {
	entries := make([]entry, len(cfg.Items))
	for i, item := range cfg.Items {
		fields := append([]string{item.Title, item.Text}, item.Lines...)
		fields = append(fields, item.Tabs...)
		entries[i] = entry{item: Build(item), text: strings.Join(fields, " ")}
	}
	return entries
}
