// Package config loads user preferences from a YAML file in the XDG config
// directory, falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "todo"

// Storage backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds user preferences.
type Config struct {
	Storage       string `yaml:"storage"`        // "file" or "sqlite"
	DataDir       string `yaml:"data_dir"`       // where todo data lives
	ConfirmDelete bool   `yaml:"confirm_delete"` // require confirmation for delete in the TUI

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // path to log file
}

// Default returns the default settings.
func Default() *Config {
	dataDir := filepath.Join(xdg.DataHome, appName)
	return &Config{
		Storage:       BackendFile,
		DataDir:       dataDir,
		ConfirmDelete: false,
		LogLevel:      getEnv("TODO_LOG_LEVEL", "info"),
		LogFile:       getEnv("TODO_LOG_FILE", filepath.Join(dataDir, "todo.log")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to its default location.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
