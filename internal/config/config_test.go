package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, "carwash.db", filepath.Base(cfg.DataPath))
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carwash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_path: /tmp/wash.db\nadmin:\n  password: geheim\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wash.db", cfg.DataPath)
	assert.Equal(t, "geheim", cfg.Admin.Password)
	// Untouched fields keep their defaults.
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin: [not: a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
