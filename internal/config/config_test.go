package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
format: flatVariables
log:
  dir: /var/log/brand-tokens
server:
  addr: 127.0.0.1:9090
extract:
  concurrency: 0
`), 0o644))

	t.Setenv("BRANDTOKENS_SERVER_ADDR", ":7070")
	t.Setenv("BRANDTOKENS_DEBUG", "true")

	cfg, err := Load(New(), file)
	require.NoError(t, err)

	assert.Equal(t, "flatVariables", cfg.Format)
	assert.Equal(t, "/var/log/brand-tokens", cfg.Log.Dir)
	assert.Equal(t, ":7070", cfg.Server.Addr, "environment wins over file")
	assert.Equal(t, "debug", cfg.Log.Level, "debug flag raises the level")
	assert.Equal(t, 1, cfg.Extract.Concurrency, "concurrency is at least one")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
