package model

import "time"

// Config holds per-installation state (singleton).
type Config struct {
	Key             string    `json:"key"`
	InstallationKey string    `json:"installation_key"`
	CreatedAt       time.Time `json:"created_at"`
	SeededAt        time.Time `json:"seeded_at,omitempty"`
}

// SetKey sets the database key for this config.
func (c *Config) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this config.
func (c *Config) GetKey() string {
	return c.Key
}

// NewConfig creates a new config with the given installation key.
func NewConfig(installationKey string) *Config {
	return &Config{
		Key:             KeyConfig,
		InstallationKey: installationKey,
		CreatedAt:       time.Now().UTC(),
	}
}
