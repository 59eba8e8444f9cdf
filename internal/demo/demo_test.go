package demo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ayn2op/widgetlist"
	"github.com/ayn2op/widgetlist/internal/config"
	"github.com/ayn2op/widgetlist/items"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		item config.Item
		want any
	}{
		{name: "card", item: config.Item{Kind: config.KindCard, Title: "A"}, want: &items.Card{}},
		{name: "paragraph", item: config.Item{Kind: config.KindParagraph, Height: 4}, want: &items.Paragraph{}},
		{name: "tabs", item: config.Item{Kind: config.KindTabs, Tabs: []string{"a"}}, want: &items.Tabs{}},
		{name: "text", item: config.Item{Kind: config.KindText, Text: "hi"}, want: &items.Text{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, Build(tt.item))
		})
	}

	t.Run("should honor a fixed paragraph height", func(t *testing.T) {
		item := Build(config.Item{Kind: config.KindParagraph, Text: "x", Height: 4})
		assert.Equal(t, 4, item.Height(40))
	})

	t.Run("should join text lines", func(t *testing.T) {
		item := Build(config.Item{Kind: config.KindText, Text: "a", Lines: []string{"b", "c"}})
		assert.Equal(t, 3, item.Height(40))
	})
}

func TestFilter(t *testing.T) {
	entries := buildEntries(config.Config{Items: []config.Item{
		{Kind: config.KindText, Text: "banana bread"},
		{Kind: config.KindText, Text: "apple"},
		{Kind: config.KindText, Text: "Apple pie"},
		{Kind: config.KindText, Text: "cherry"},
	}})

	t.Run("should keep everything for an empty query", func(t *testing.T) {
		assert.Len(t, filter(entries, "  "), 4)
	})

	t.Run("should rank closer matches first", func(t *testing.T) {
		got := filter(entries, "apple")
		require.Len(t, got, 2)
		assert.Same(t, entries[1].item, got[0])
		assert.Same(t, entries[2].item, got[1])
	})

	t.Run("should drop items that don't match", func(t *testing.T) {
		assert.Empty(t, filter(entries, "xyz"))
	})
}

func TestView(t *testing.T) {
	cfg := config.Config{
		Title: "Food",
		Items: []config.Item{
			{Kind: config.KindCard, Title: "apple", Text: "fruit"},
			{Kind: config.KindCard, Title: "bread", Text: "bakery"},
			{Kind: config.KindTabs, Title: "views", Tabs: []string{"a", "b"}},
		},
	}
	v := NewView(cfg, discardLogger())
	l := v.List()

	assert.Equal(t, 3, l.GetItemCount())
	assert.Equal(t, "Food", l.GetTitle())
	assert.False(t, v.keyMap.ClearFilter.Enabled())

	t.Run("should filter while editing", func(t *testing.T) {
		v.startFilter()
		assert.Equal(t, "/_", l.GetFooter())
		assert.True(t, v.keyMap.ClearFilter.Enabled())
		assert.False(t, v.keyMap.Filter.Enabled())

		assert.Equal(t, widgetlist.RedrawCommand{}, v.PasteHandler("bre\nad"))
		assert.Equal(t, "bre ad", v.Query())
		v.backspace()
		v.backspace()
		v.backspace()
		assert.Equal(t, "bre", v.Query())
		assert.Equal(t, 1, l.GetItemCount())
		assert.Equal(t, "/bre_", l.GetFooter())
	})

	t.Run("should keep the query after editing", func(t *testing.T) {
		v.stopFilter(false)
		assert.Equal(t, "/bre", l.GetFooter())
		assert.Nil(t, v.PasteHandler("ignored"))
		assert.Equal(t, 1, l.GetItemCount())
	})

	t.Run("should apply the query to reloaded items", func(t *testing.T) {
		reloaded := cfg
		reloaded.Items = append([]config.Item{{Kind: config.KindText, Text: "breadcrumbs"}}, cfg.Items...)
		v.SetConfig(reloaded)
		assert.Equal(t, 2, l.GetItemCount())
	})

	t.Run("should restore all items when cleared", func(t *testing.T) {
		v.stopFilter(true)
		assert.Empty(t, v.Query())
		assert.Empty(t, l.GetFooter())
		assert.Equal(t, 4, l.GetItemCount())
	})

	t.Run("should cycle tabs on activation", func(t *testing.T) {
		tabs := l.Items()[3].(*items.Tabs)
		v.onSelected(3, tabs)
		assert.Equal(t, 1, tabs.Active())
		v.onSelected(3, tabs)
		assert.Equal(t, 0, tabs.Active())
	})

	t.Run("should report focus of the list", func(t *testing.T) {
		assert.False(t, v.HasFocus())
		l.Focus(nil)
		assert.True(t, v.HasFocus())
	})
}
