package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnvVar names an explicit config file path.
const ConfigEnvVar = "LSV_CONFIG"

// DefaultConfigPath returns the config file location
// Priority order:
//  1. LSV_CONFIG environment variable (if set)
//  2. $XDG_CONFIG_HOME/lsv/config.yaml
//  3. ~/.config/lsv/config.yaml (or the platform equivalent)
//
// The file does not need to exist.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}

	return filepath.Join(dir, "lsv", "config.yaml"), nil
}

// LoadDefaultConfig loads the config file from DefaultConfigPath.
// When no config directory can be determined, defaults are returned.
func LoadDefaultConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
