package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("STORAGE_ENABLED", "1")
	t.Setenv("STORAGE_BUCKET", "counts")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "counts", cfg.Storage.Bucket)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

type section struct {
	Name  string `mapstructure:"name" default:"counter"`
	Limit int    `mapstructure:"limit" default:"3"`
}

type extended struct {
	Config `mapstructure:",squash"`
	Extra  section `mapstructure:"extra"`
}

func TestLoad_SquashedSections(t *testing.T) {
	t.Setenv("EXTRA_LIMIT", "9")

	var cfg extended
	require.NoError(t, Load(t.TempDir(), &cfg))

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, "counter", cfg.Extra.Name)
	assert.Equal(t, 9, cfg.Extra.Limit)
}
