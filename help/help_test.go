package help

import (
	"testing"

	"github.com/ayn2op/widgetlist/keybind"
	"github.com/stretchr/testify/assert"
)

type keyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (m keyMap) ShortHelp() []keybind.Keybind  { return m.short }
func (m keyMap) FullHelp() [][]keybind.Keybind { return m.full }

func TestShortHelp(t *testing.T) {
	bindings := []keybind.Keybind{
		keybind.NewKeybind(keybind.WithKeys("up"), keybind.WithHelp("↑/k", "up")),
		keybind.NewKeybind(keybind.WithKeys("down"), keybind.WithHelp("↓/j", "down")),
		keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "clear"), keybind.WithDisabled()),
		keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "select")),
	}
	h := New()

	tests := []struct {
		name     string
		maxWidth int
		want     string
	}{
		{name: "unlimited", maxWidth: 0, want: "↑/k up • ↓/j down • enter select"},
		{name: "exact fit", maxWidth: 32, want: "↑/k up • ↓/j down • enter select"},
		{name: "truncated", maxWidth: 20, want: "↑/k up • ↓/j down …"},
		{name: "nothing fits", maxWidth: 3, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.ShortHelpLine(bindings, tt.maxWidth))
		})
	}
}

func TestFullHelp(t *testing.T) {
	groups := [][]keybind.Keybind{
		{
			keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "alpha")),
			keybind.NewKeybind(keybind.WithKeys("b"), keybind.WithHelp("bb", "beta")),
		},
		{
			keybind.NewKeybind(keybind.WithKeys("c"), keybind.WithHelp("c", "gamma")),
		},
		{
			keybind.NewKeybind(keybind.WithKeys("d"), keybind.WithHelp("d", "delta"), keybind.WithDisabled()),
		},
	}
	h := New()

	t.Run("should align columns", func(t *testing.T) {
		assert.Equal(t, []string{
			"a  alpha    c gamma",
			"bb beta            ",
		}, h.FullHelpLines(groups, 0))
	})

	t.Run("should drop columns that don't fit", func(t *testing.T) {
		assert.Equal(t, []string{
			"a  alpha …",
			"bb beta",
		}, h.FullHelpLines(groups, 15))
	})

	t.Run("should show only an ellipsis when no column fits", func(t *testing.T) {
		assert.Equal(t, []string{"…"}, h.FullHelpLines(groups, 5))
	})

	t.Run("should be empty without enabled keybinds", func(t *testing.T) {
		assert.Empty(t, h.FullHelpLines(groups[2:], 0))
	})
}

func TestHeight(t *testing.T) {
	m := keyMap{
		short: []keybind.Keybind{keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit"))},
		full: [][]keybind.Keybind{{
			keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit")),
			keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		}},
	}
	h := New()
	assert.Equal(t, 1, h.Height(80))

	h.SetKeyMap(m)
	assert.Equal(t, 1, h.Height(80))

	h.SetShowAll(true)
	assert.True(t, h.ShowAll())
	assert.Equal(t, 2, h.Height(80))
}
