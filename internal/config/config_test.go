package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/sampledeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.DefaultLanguage)
	assert.Equal(t, 4, c.CheckWorkers)
	assert.Empty(t, c.FixturesDir)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	in := &config.Global{FixturesDir: "/tmp/fx", DefaultLanguage: "java", CheckWorkers: 0, ExportDir: "out"}
	require.NoError(t, config.Save(in, path))

	out, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fx", out.FixturesDir)
	assert.Equal(t, "java", out.DefaultLanguage)
	assert.Equal(t, 1, out.CheckWorkers, "workers are clamped to at least 1")
	assert.Equal(t, "out", out.ExportDir)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_language: go\n"), 0o644))
	t.Setenv("SAMPLEDECK_DEFAULT_LANGUAGE", "python")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "python", c.DefaultLanguage)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "json", c.DefaultLanguage)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_language: [oops\n"), 0o644))
	_, err := config.Load(path)
	assert.Error(t, err)
}
