package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "database: /tmp/other.db\ndebug: true\nlog_dir: /tmp/logs\nseed_on_init: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Database)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/logs", cfg.LogDir)
	assert.True(t, cfg.SeedOnInit)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("debug: false\n"), 0o600))
	t.Setenv("HABITUAL_DEBUG", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("debug: [unclosed\n"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	written, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.True(t, written)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.SeedOnInit)

	written, err = WriteDefault(dir)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/habitual", Dir("/var/lib/habitual/habitual.db"))
	assert.Equal(t, filepath.Join(home, ".config", "habitual"), Dir("~/.config/habitual/habitual.db"))
	assert.Equal(t, filepath.Join(home, ".config", "habitual"), Dir("postgres://user@localhost/db"))
	assert.Equal(t, filepath.Join(home, ".config", "habitual"), Dir("keyring"))
}
