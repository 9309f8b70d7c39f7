// Package config provides centralized configuration for spanset runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/logging"
)

const (
	// AppName names the XDG subdirectories.
	AppName = "spanset"
	// MemoryDatabase selects an in-memory store in SPANSET_DATABASE or db_path.
	MemoryDatabase = ":memory:"
	// MaxHistoryLimit caps history_limit.
	MaxHistoryLimit = 10000
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Editor configuration
	Editor EditorConfig

	// History configuration
	History HistoryConfig

	// Path is the config file that was read, if any.
	Path string
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// DBPath is the badger directory.
	// Default: $XDG_DATA_HOME/spanset/db
	DBPath string

	// InMemory keeps the database in memory. Set by a db path of ":memory:".
	InMemory bool
}

// EditorConfig holds settings for presenting and editing values.
type EditorConfig struct {
	// Lang is the preferred label language. Empty falls back to the locale.
	Lang string

	// DefinitionsPath is the user setting definitions file.
	// Default: $XDG_CONFIG_HOME/spanset/settings.toml
	DefinitionsPath string
}

// HistoryConfig holds history listing configuration.
type HistoryConfig struct {
	// Limit is the default number of history entries shown.
	// Default: 20
	Limit int
}

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	Lang         string `toml:"lang"`
	DBPath       string `toml:"db_path"`
	Definitions  string `toml:"definitions"`
	HistoryLimit int    `toml:"history_limit"`
}

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigPath overrides DefaultConfigPath. SPANSET_CONFIG overrides both.
	ConfigPath string
	// EnvFile is a dotenv file loaded before the environment is read.
	// Variables already set are not overridden. Missing files are ignored.
	EnvFile string
}

// DefaultConfigPath returns the config file under the XDG config home.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			DBPath: filepath.Join(xdg.DataHome, AppName, "db"),
		},
		Editor: EditorConfig{
			DefinitionsPath: filepath.Join(xdg.ConfigHome, AppName, "settings.toml"),
		},
		History: HistoryConfig{
			Limit: 20,
		},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, in increasing precedence.
func Load(opts LoadOptions) (*RuntimeConfig, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.NewSystemErrorWithOp("read", "cannot load "+opts.EnvFile, err)
		}
	}

	cfg := DefaultRuntimeConfig()

	path := opts.ConfigPath
	if v := os.Getenv("SPANSET_CONFIG"); v != "" {
		path = v
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := cfg.loadFromFile(path); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Editor.DefinitionsPath = expandPath(cfg.Editor.DefinitionsPath)
	cfg.applyMemory()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile reads the TOML config file if it exists.
func (c *RuntimeConfig) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewSystemErrorWithOp("read", "cannot read config file", err)
	}

	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return &errors.UserError{
			Message:    "Invalid config file " + path,
			Suggestion: err.Error(),
			Cause:      err,
		}
	}

	c.Path = path
	if f.Lang != "" {
		c.Editor.Lang = f.Lang
	}
	if f.DBPath != "" {
		c.Storage.DBPath = f.DBPath
	}
	if f.Definitions != "" {
		c.Editor.DefinitionsPath = f.Definitions
	}
	if f.HistoryLimit != 0 {
		c.History.Limit = f.HistoryLimit
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
// Invalid values are logged and ignored.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("SPANSET_DATABASE"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("SPANSET_LANG"); v != "" {
		c.Editor.Lang = v
	}
	if v := os.Getenv("SPANSET_DEFINITIONS"); v != "" {
		c.Editor.DefinitionsPath = v
	}
	if v := os.Getenv("SPANSET_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History.Limit = n
		} else {
			logging.Warn("ignoring invalid environment value", logging.KeyEnv, "SPANSET_HISTORY_LIMIT", logging.KeyValue, v)
		}
	}
}

func (c *RuntimeConfig) applyMemory() {
	if c.Storage.DBPath == MemoryDatabase {
		c.Storage.InMemory = true
		c.Storage.DBPath = ""
	}
}

// Validate checks value ranges.
func (c *RuntimeConfig) Validate() error {
	if c.History.Limit < 1 || c.History.Limit > MaxHistoryLimit {
		return errors.NewUserErrorWithField("history_limit", strconv.Itoa(c.History.Limit),
			"history_limit out of range",
			"Use a value between 1 and "+strconv.Itoa(MaxHistoryLimit))
	}
	if !c.Storage.InMemory && c.Storage.DBPath == "" {
		return errors.NewUserError("Database path is empty", "Set db_path or SPANSET_DATABASE")
	}
	return nil
}

// ResolveLang picks the label language: an explicit choice first, then the
// configured language, then the POSIX locale variables.
func (c *RuntimeConfig) ResolveLang(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.Editor.Lang != "" {
		return c.Editor.Lang
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
