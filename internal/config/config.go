// ABOUTME: Tipsy configuration management with backend selection.
// ABOUTME: Handles settings, default user, and storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/tipsy/internal/charm"
	"github.com/harperreed/tipsy/internal/storage"
)

// Config stores tipsy tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm"
	// (Charm Cloud KV with encrypted sync).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for SQLite data storage.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/tipsy.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultUser is the subject id used when no --user flag is given.
	DefaultUser string `json:"default_user,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultUser returns the configured default user id, falling back to
// "me" for the single-subject case.
func (c *Config) GetDefaultUser() string {
	if c.DefaultUser == "" {
		return "me"
	}
	return c.DefaultUser
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch c.GetBackend() {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "tipsy.db")
		return storage.Open(dbPath)
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "tipsy", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
