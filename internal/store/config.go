package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// KeyEmpresa is the fixed key of the singleton company configuration.
const KeyEmpresa = "empresa"

// ConfigStore handles the flat key/value configuration table.
type ConfigStore struct {
	store *Store
}

// NewConfigStore creates a new ConfigStore.
func NewConfigStore(s *Store) *ConfigStore {
	return &ConfigStore{store: s}
}

// Set stores a JSON-encoded value under key, overwriting any previous value.
func (c *ConfigStore) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode config %q: %w", key, err)
	}
	_, err = c.store.Exec(`
		INSERT INTO pintor_config (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(data), time.Now().Unix())
	return err
}

// Get decodes the value stored under key into dest. Returns false when the
// key is absent, leaving dest untouched.
func (c *ConfigStore) Get(key string, dest interface{}) (bool, error) {
	var value string
	err := c.store.QueryRow(`SELECT value FROM pintor_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, fmt.Errorf("failed to decode config %q: %w", key, err)
	}
	return true, nil
}

// Empresa returns the company configuration, or nil when not yet set.
func (c *ConfigStore) Empresa() (*model.ConfigEmpresa, error) {
	var cfg model.ConfigEmpresa
	ok, err := c.Get(KeyEmpresa, &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

// SaveEmpresa stores the company configuration.
func (c *ConfigStore) SaveEmpresa(cfg *model.ConfigEmpresa) error {
	return c.Set(KeyEmpresa, cfg)
}
