package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	require.Error(t, err, "explicit config path must exist")

	t.Setenv("WORKLOG_CONFIG_PATH", writeConfig(t, ""))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 450, cfg.WorkNorm.Minutes)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG_PATH", writeConfig(t, `
db:
  path: /tmp/wl.db
work_norm:
  minutes: 480
log:
  verbose: true
`))
	t.Setenv("WORKLOG_DB", "")
	t.Setenv("WORKLOG_NORM_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wl.db", cfg.DB.Path)
	assert.Equal(t, 480, cfg.WorkNorm.Minutes)
	assert.True(t, cfg.Log.Verbose)

	path, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wl.db", path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG_PATH", writeConfig(t, "work_norm:\n  minutes: 480\n"))
	t.Setenv("WORKLOG_DB", "/tmp/env.db")
	t.Setenv("WORKLOG_NORM_MINUTES", "300")
	t.Setenv("WORKLOG_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DB.Path)
	assert.Equal(t, 300, cfg.WorkNorm.Minutes)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG_PATH", writeConfig(t, ""))

	t.Setenv("WORKLOG_NORM_MINUTES", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("WORKLOG_NORM_MINUTES", "-10")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("WORKLOG_NORM_MINUTES", "")
	t.Setenv("WORKLOG_VERBOSE", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
