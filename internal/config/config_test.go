package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, FormatText, cfg.Output)
	assert.Empty(t, cfg.TaxonomyPath)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reads fields from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"taxonomy_path: /tmp/custom.yaml\noutput: json\nno_color: true\nverbose: true\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.yaml", cfg.TaxonomyPath)
		assert.Equal(t, FormatJSON, cfg.Output)
		assert.True(t, cfg.NoColor)
		assert.True(t, cfg.Verbose)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("no_color: true\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.NoColor)
		assert.Equal(t, FormatText, cfg.Output)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}
