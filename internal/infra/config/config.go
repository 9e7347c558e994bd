// Package config loads application configuration from an optional JSON file
// with PINTOR_* environment variable overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel string `json:"log_level"`

	// Storage
	StorePath string `json:"store_path"`

	// Identity: the account the sync coordinator pushes under. Empty means
	// no session; the local store keeps working, sync stays inert.
	AccountID string `json:"account_id"`

	// Sync
	Sync SyncConfig `json:"sync"`

	// Remote store (DynamoDB)
	Remote RemoteConfig `json:"remote"`

	// WhatsApp share
	Share ShareConfig `json:"share"`
}

// SyncConfig controls the sync coordinator.
type SyncConfig struct {
	// AssumeOnline seeds the connectivity signal at startup. The embedding
	// environment flips it afterwards via Coordinator.SetOnline.
	AssumeOnline bool `json:"assume_online"`

	// PushAttempts bounds the immediate push after a local save. Bulk
	// catch-up always uses single attempts since it re-runs on the next
	// trigger anyway.
	PushAttempts int `json:"push_attempts"`
}

// RemoteConfig holds the remote store settings.
type RemoteConfig struct {
	Enabled      bool   `json:"enabled"`
	Region       string `json:"region"`
	Endpoint     string `json:"endpoint"`
	QuotesTable  string `json:"quotes_table"`
	ClientsTable string `json:"clients_table"`
	ConfigTable  string `json:"config_table"`
}

// ShareConfig holds the WhatsApp share settings.
type ShareConfig struct {
	Enabled bool `json:"enabled"`

	// CountryCode is prefixed to client phone numbers that don't carry one.
	CountryCode string `json:"country_code"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		LogLevel:  "INFO",
		StorePath: filepath.Join(homeDir, ".pintor-pro", "store"),
		Sync: SyncConfig{
			AssumeOnline: true,
			PushAttempts: 3,
		},
		Remote: RemoteConfig{
			Region:       "us-east-1",
			QuotesTable:  "pintor_orcamentos",
			ClientsTable: "pintor_clientes",
			ConfigTable:  "pintor_config",
		},
		Share: ShareConfig{
			CountryCode: "55",
		},
	}
}

// LoadFromFile loads configuration from a JSON file, returning defaults when
// the file does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration. PINTOR_CONFIG names an optional JSON file;
// individual PINTOR_* variables override whatever the file says.
func Load() *Config {
	cfg := Default()
	if path := os.Getenv("PINTOR_CONFIG"); path != "" {
		if fileCfg, err := LoadFromFile(path); err == nil {
			cfg = fileCfg
		}
	}

	if v := os.Getenv("PINTOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PINTOR_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("PINTOR_ACCOUNT_ID"); v != "" {
		cfg.AccountID = v
	}
	if v := os.Getenv("PINTOR_SYNC_ASSUME_ONLINE"); v != "" {
		cfg.Sync.AssumeOnline = v == "true" || v == "1"
	}
	if v := os.Getenv("PINTOR_SYNC_PUSH_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sync.PushAttempts = n
		}
	}
	if v := os.Getenv("PINTOR_REMOTE_ENABLED"); v != "" {
		cfg.Remote.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("PINTOR_REMOTE_REGION"); v != "" {
		cfg.Remote.Region = v
	}
	if v := os.Getenv("PINTOR_REMOTE_ENDPOINT"); v != "" {
		cfg.Remote.Endpoint = v
	}
	if v := os.Getenv("PINTOR_REMOTE_QUOTES_TABLE"); v != "" {
		cfg.Remote.QuotesTable = v
	}
	if v := os.Getenv("PINTOR_REMOTE_CLIENTS_TABLE"); v != "" {
		cfg.Remote.ClientsTable = v
	}
	if v := os.Getenv("PINTOR_REMOTE_CONFIG_TABLE"); v != "" {
		cfg.Remote.ConfigTable = v
	}
	if v := os.Getenv("PINTOR_SHARE_ENABLED"); v != "" {
		cfg.Share.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("PINTOR_SHARE_COUNTRY_CODE"); v != "" {
		cfg.Share.CountryCode = v
	}

	return cfg
}

// EnsureStorePath creates the store directory if it doesn't exist.
func (c *Config) EnsureStorePath() error {
	return os.MkdirAll(c.StorePath, 0755)
}
