package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should return the default without a path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.True(t, cfg.TruncateEnabled())
		require.NoError(t, cfg.Validate())
	})

	t.Run("should read an item file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		data := `{
			"title": "Mixed",
			"truncate": false,
			"items": [
				{"kind": "card", "title": "A", "text": "summary", "lines": ["x"]},
				{"kind": "paragraph", "title": "P", "text": "body", "height": 5},
				{"kind": "tabs", "tabs": ["one", "two"]}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Mixed", cfg.Title)
		assert.False(t, cfg.TruncateEnabled())
		require.Len(t, cfg.Items, 3)
		assert.Equal(t, 5, cfg.Items[1].Height)
		assert.Equal(t, []string{"one", "two"}, cfg.Items[2].Tabs)
	})

	t.Run("should reject unknown kinds and negative heights", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		data := `{"items": [{"kind": "image"}, {"kind": "text", "height": -1}]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown kind "image"`)
		assert.Contains(t, err.Error(), "negative height -1")
	})

	t.Run("should report missing and malformed files", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)

		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err = Load(path)
		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "items.json")
	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Items, cfg.Items)
}
