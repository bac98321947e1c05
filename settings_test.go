package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: 640\nshare_path: out.gadgets\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 640, s.WindowW)
	assert.Equal(t, defaultWindowH, s.WindowH, "unset keys keep defaults")
	assert.Equal(t, "out.gadgets", s.SharePath)
}

func TestSettingsRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: -3\n"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettingsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
