package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "serial", cfg.Transport)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, 9600, cfg.BaudRate)
	assert.False(t, cfg.SkipChecksum)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
transport = "tcp"
addr = "192.168.1.50:4001"
skip_checksum = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tcp", cfg.Transport)
	assert.Equal(t, "192.168.1.50:4001", cfg.Addr)
	assert.True(t, cfg.SkipChecksum)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, 9600, cfg.BaudRate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("device = \" /dev/ttyS0 \"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyS0", cfg.Device)
}
