package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PD_DATA_ROOT", "")
	t.Setenv("PD_LOG_LEVEL", "")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.DataRoot)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadReadsConfigFile(t *testing.T) {
	t.Setenv("PD_DATA_ROOT", "")
	t.Setenv("PD_LOG_LEVEL", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(strings.Join([]string{
		"[data]",
		"root = \"/srv/pomodesk\"",
		"",
		"[log]",
		"level = \"debug\"",
		"format = \"json\"",
		"",
	}, "\n")), 0o600))

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/pomodesk", cfg.DataRoot)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nlevel = \"debug\"\n"), 0o600))
	t.Setenv("PD_LOG_LEVEL", "error")
	t.Setenv("PD_DATA_ROOT", "/tmp/elsewhere")

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataRoot)
}

func TestLoadMalformedConfigReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log\nlevel ="), 0o600))

	_, err := Load(viper.New(), dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}
