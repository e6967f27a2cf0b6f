package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILoggerFileSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	l, err := newCLILogger("info", dir, &console)
	require.NoError(t, err)

	l.Debugf("hidden %d", 1)
	l.Infof("extracted %d colors", 3)
	l.Warnf("no fonts")
	l.Errorf("decode failed")
	require.NoError(t, l.Close())

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "extracted 3 colors")

	app, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "[INFO] extracted 3 colors")
	assert.Contains(t, string(app), "[WARN] no fonts")
	assert.Contains(t, string(app), "[ERROR] decode failed")
	assert.NotContains(t, string(app), "hidden")

	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errs), "extracted")
	assert.Contains(t, string(errs), "[WARN] no fonts")
	assert.Contains(t, string(errs), "[ERROR] decode failed")
}

func TestCLILoggerDebugConsoleOnly(t *testing.T) {
	var console bytes.Buffer

	l, err := newCLILogger("DEBUG", "", &console)
	require.NoError(t, err)

	l.Debugf("config loaded")
	assert.Contains(t, console.String(), "config loaded")
	assert.NoError(t, l.Close())
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "structured, flatVariables, preprocessorVariables, yaml", formatList())
}
