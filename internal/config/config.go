// Package config loads the optional skill-link.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional file-level configuration. Every field has a
// working zero value; command-line flags override anything set here.
type Config struct {
	// Source overrides the default skills directory.
	Source string `yaml:"source"`
	// ExtraTargets are additional target directories, validated as
	// strictly as an explicit --target.
	ExtraTargets []string `yaml:"extra_targets"`
	// DisabledTools are tool names excluded from auto-discovery.
	DisabledTools []string `yaml:"disabled_tools"`
}

// Load reads a config file. A missing file is not an error — the zero
// Config is returned so every setting falls back to its default.
// Malformed yaml is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
