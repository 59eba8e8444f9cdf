package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind maps a set of normalized key strings, such as "ctrl+e" or "pgdn",
// to an action with help text. A disabled keybind never matches and is left
// out of help output.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

type Help struct {
	Key  string
	Desc string
}

// Matches reports whether the event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	return matchesKey(eventKeyString(event), keybinds...)
}

func matchesKey(key string, keybinds ...Keybind) bool {
	if key == "" {
		return false
	}
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

// modifierOrder is the order modifiers appear in normalized key strings.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var primaryAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
}

// normalizeKey turns a key description such as "Control+E" or "PageDown" into
// the form produced for key events, for example "ctrl+e" or "pgdn".
func normalizeKey(key string) string {
	mods := make(map[string]bool, len(modifierOrder))
	primary := ""
	for _, part := range strings.Split(strings.TrimSpace(key), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierAliases[strings.ToLower(part)]; ok {
			mods[mod] = true
			continue
		}
		primary = normalizePrimaryKey(part)
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods["shift"] = true
		primary = "tab"
	}
	return joinKey(mods, primary)
}

func normalizePrimaryKey(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) >= 7 {
		return key[5 : len(key)-1]
	}
	// Single characters are case sensitive: "G" and "g" are different keys.
	if len([]rune(key)) == 1 {
		return key
	}
	key = strings.ToLower(key)
	if alias, ok := primaryAliases[key]; ok {
		return alias
	}
	return key
}

func joinKey(mods map[string]bool, primary string) string {
	parts := make([]string, 0, len(modifierOrder)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	if len(parts) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return strings.Join(append(parts, primary), "+")
}

func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	primary, named := keyNames[key]
	switch {
	case named:
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	case key == tcell.KeyRune:
		primary = event.Str()
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	modifiers := event.Modifiers()
	return joinKey(map[string]bool{
		"ctrl":  modifiers&tcell.ModCtrl != 0,
		"alt":   modifiers&tcell.ModAlt != 0,
		"shift": key == tcell.KeyBacktab || modifiers&tcell.ModShift != 0,
		"meta":  modifiers&tcell.ModMeta != 0,
	}, primary)
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}
