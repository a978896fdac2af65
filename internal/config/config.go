package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDatabasePath is the environment variable that overrides the database
// location. A .env file in the working directory is honored when present.
const EnvDatabasePath = "AVALON_DB"

// Config represents the flat tracker configuration stored in
// ~/.avalon/config.json.
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"`
}

// LoadConfig reads config.json from the tracker directory. Returns an error
// if no config exists - callers fall back to defaults.
func LoadConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the tracker directory.
func SaveConfig(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Dir returns the tracker directory (~/.avalon).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".avalon"), nil
}

// DatabasePath resolves the database location. Resolution order: the
// AVALON_DB environment variable, then config.json, then the default
// ~/.avalon/avalon.db.
func DatabasePath() (string, error) {
	if path := os.Getenv(EnvDatabasePath); path != "" {
		return path, nil
	}

	if cfg, err := LoadConfig(); err == nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}

	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "avalon.db"), nil
}
