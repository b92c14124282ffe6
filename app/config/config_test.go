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
	for _, key := range []string{
		"QUILL_ENV", "QUILL_ADDR", "QUILL_DATA_DIR",
		"QUILL_BACKUP_DIR", "QUILL_LOG_LEVEL", "QUILL_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, filepath.Join("data", "badger"), cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "backups"), cfg.BackupDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUILL_ENV", "production")
	t.Setenv("QUILL_ADDR", "127.0.0.1:9000")
	t.Setenv("QUILL_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("QUILL_DATA_DIR")
	t.Cleanup(func() { os.Unsetenv("QUILL_DATA_DIR") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("QUILL_DATA_DIR=/tmp/quill-test\n"), 0644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/quill-test", cfg.DataDir)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown environment", key: "QUILL_ENV", value: "staging"},
		{name: "unknown log level", key: "QUILL_LOG_LEVEL", value: "loud"},
		{name: "malformed timeout", key: "QUILL_SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "zero timeout", key: "QUILL_SHUTDOWN_TIMEOUT", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
