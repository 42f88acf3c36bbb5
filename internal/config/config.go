// Package config loads and saves aisle's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all aisle configuration.
type Config struct {
	Datastore  DatastoreConfig  `toml:"datastore"`
	Sync       SyncConfig       `toml:"sync"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DatastoreConfig points at the shared plan datastore.
type DatastoreConfig struct {
	// Path is the SQLite file holding plans and guests. Usually a file
	// on a shared mount so everyone planning the wedding sees the same
	// data. Empty means an in-memory store (nothing survives exit).
	Path string `toml:"path,omitempty"`
}

// SyncConfig tunes the push/pull cadence of a live dashboard session.
type SyncConfig struct {
	PushDebounceMs  int `toml:"push_debounce_ms"`
	PullIntervalSec int `toml:"pull_interval_sec"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Datastore: DatastoreConfig{
			Path: filepath.Join(ConfigDir(), "plans.db"),
		},
		Sync: SyncConfig{
			PushDebounceMs:  500,
			PullIntervalSec: 15,
		},
		Appearance: AppearanceConfig{
			Theme: "blush",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aisle")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aisle")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
