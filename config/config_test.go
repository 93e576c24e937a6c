package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CALLEXPLORER_SOURCE", "CALLEXPLORER_LOG_FILE", "CALLEXPLORER_LOG_LEVEL", "CALLEXPLORER_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Found Call Analysis Explorer", cfg.Title)
	assert.Equal(t, "warn", cfg.Log.Level)

	d, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Source = "/data/calls.csv"
	cfg.FetchTimeout = "5s"
	cfg.Log.File = "/tmp/callexplorer.log"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: calls.csv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "calls.csv", cfg.Source)
	assert.Equal(t, "Found Call Analysis Explorer", cfg.Title)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALLEXPLORER_SOURCE", "https://example.com/calls.csv")
	t.Setenv("CALLEXPLORER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/calls.csv", cfg.Source)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("source: [unclosed\n"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	timeout := filepath.Join(dir, "timeout.yaml")
	require.NoError(t, os.WriteFile(timeout, []byte("fetch_timeout: soon\n"), 0o644))
	_, err = Load(timeout)
	assert.ErrorContains(t, err, "fetch_timeout")
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv("CALLEXPLORER_CONFIG", "/etc/callexplorer.yaml")
	assert.Equal(t, "/etc/callexplorer.yaml", DefaultPath())
}
