// Package config reads the item file shown by the demo.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Item kinds.
const (
	KindCard      = "card"
	KindParagraph = "paragraph"
	KindTabs      = "tabs"
	KindText      = "text"
)

// Config describes the list shown by the demo.
type Config struct {
	Title     string `json:"title,omitempty"`
	Truncate  *bool  `json:"truncate,omitempty"`
	ScrollBar bool   `json:"scrollbar,omitempty"`
	Border    string `json:"border,omitempty"`
	Items     []Item `json:"items"`
}

// Item describes one list item. Which fields are used depends on Kind.
type Item struct {
	Kind   string   `json:"kind"`
	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text,omitempty"`
	Lines  []string `json:"lines,omitempty"`
	Tabs   []string `json:"tabs,omitempty"`
	Height int      `json:"height,omitempty"`
}

// TruncateEnabled reports whether partially visible items are drawn in their
// clipped form. It defaults to true.
func (c Config) TruncateEnabled() bool {
	return c.Truncate == nil || *c.Truncate
}

// Load reads the item file at path. An empty path yields [Default].
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read item file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse item file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("item file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the item kinds and heights.
func (c Config) Validate() error {
	var errs []error
	for i, item := range c.Items {
		switch item.Kind {
		case KindCard, KindParagraph, KindTabs, KindText:
		default:
			errs = append(errs, fmt.Errorf("item %d: unknown kind %q", i, item.Kind))
		}
		if item.Height < 0 {
			errs = append(errs, fmt.Errorf("item %d: negative height %d", i, item.Height))
		}
	}
	return errors.Join(errs...)
}

// Default returns a week of todo cards followed by one item of each other
// kind.
func Default() Config {
	days := []struct {
		day   string
		tasks []string
	}{
		{"Monday", []string{"Water the plants", "Answer the email backlog"}},
		{"Tuesday", []string{"Groceries", "Call the plumber", "Pay rent"}},
		{"Wednesday", []string{"Dentist at 10:00"}},
		{"Thursday", []string{"Laundry", "Clean the kitchen", "Return library books", "Fix the bike"}},
		{"Friday", []string{"Team retro", "Pick up the parcel"}},
		{"Saturday", []string{"Farmers market"}},
		{"Sunday", []string{"Rest"}},
	}

	cfg := Config{Title: "This week", ScrollBar: true}
	for _, d := range days {
		cfg.Items = append(cfg.Items, Item{
			Kind:  KindCard,
			Title: d.day,
			Text:  fmt.Sprintf("%d tasks", len(d.tasks)),
			Lines: d.tasks,
		})
	}
	cfg.Items = append(cfg.Items,
		Item{
			Kind:  KindParagraph,
			Title: "Notes",
			Text:  "Cards expand when selected, so the list scrolls just enough to keep the whole card in view. Items cut off at the edges are drawn partially.",
		},
		Item{Kind: KindTabs, Title: "Views", Tabs: []string{"Day", "Week", "Month", "Year"}},
		Item{Kind: KindText, Text: "Type to filter, esc to clear, q to quit."},
	)
	return cfg
}
