// Package config loads the back-office configuration from an optional
// YAML file. Every field has a working default so the tool runs with no
// config at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// DataPath is the location of the store file.
	DataPath string `yaml:"data_path"`

	Admin AdminConfig `yaml:"admin"`
}

// AdminConfig holds the back-office login pair.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataPath: filepath.Join(home, ".wolke", "carwash.db"),
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
