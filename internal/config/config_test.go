package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	// An explicitly named file that is missing is an error; no file named
	// at all falls back to defaults.
	assert.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.False(t, cfg.IncludeDisabled)
	assert.Equal(t, 0, cfg.ZlibLevel)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solsave.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"logger:\n  level: debug\n  format: json\ninclude_disabled: true\nzlib_level: 9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.IncludeDisabled)
	assert.Equal(t, 9, cfg.ZlibLevel)
}
