package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "55", cfg.Share.CountryCode)
	assert.Equal(t, 3, cfg.Sync.PushAttempts)
	assert.True(t, cfg.Sync.AssumeOnline)
	assert.False(t, cfg.Remote.Enabled)
	assert.Equal(t, "pintor_orcamentos", cfg.Remote.QuotesTable)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]interface{}{
		"log_level":  "DEBUG",
		"account_id": "acc-1",
		"remote":     map[string]interface{}{"enabled": true, "region": "sa-east-1"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "acc-1", cfg.AccountID)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "sa-east-1", cfg.Remote.Region)
	// Untouched fields keep defaults.
	assert.Equal(t, "pintor_clientes", cfg.Remote.ClientsTable)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PINTOR_LOG_LEVEL", "WARN")
	t.Setenv("PINTOR_ACCOUNT_ID", "acc-2")
	t.Setenv("PINTOR_SYNC_ASSUME_ONLINE", "0")
	t.Setenv("PINTOR_SYNC_PUSH_ATTEMPTS", "5")
	t.Setenv("PINTOR_REMOTE_ENABLED", "true")
	t.Setenv("PINTOR_SHARE_COUNTRY_CODE", "351")

	cfg := Load()
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, "acc-2", cfg.AccountID)
	assert.False(t, cfg.Sync.AssumeOnline)
	assert.Equal(t, 5, cfg.Sync.PushAttempts)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "351", cfg.Share.CountryCode)
}
