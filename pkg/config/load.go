// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default config file names to search for in the project directory
var defaultConfigFiles = []string{
	".devsetup.yaml",
	".devsetup.yml",
}

// Load loads configuration from a specific file path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// LoadDefault searches the project directory for a config file and falls
// back to the stock defaults when none exists.
func LoadDefault(projectDir string) (*Config, error) {
	for _, filename := range defaultConfigFiles {
		configPath := filepath.Join(projectDir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}
	return DefaultConfig(), nil
}
