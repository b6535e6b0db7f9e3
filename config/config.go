// Package config loads the tool configuration from .starfix.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the project root when no --config flag is
// given.
const DefaultFileName = ".starfix.yaml"

// Config holds all configuration for starfix.
type Config struct {
	// Exclude lists glob patterns of paths to skip, relative to the root.
	Exclude []string `yaml:"exclude"`

	// SkipTests skips *Test.java files and src/test trees.
	SkipTests bool `yaml:"skip_tests"`

	// ImplicitScopes lists scopes whose members never need an import.
	// java.lang is always implied.
	ImplicitScopes []string `yaml:"implicit_scopes"`

	// Cache enables skipping files that were clean on a previous run and
	// have not changed since.
	Cache bool `yaml:"cache"`

	// CachePath overrides the cache file location, default
	// <root>/.starfix.cache.
	CachePath string `yaml:"cache_path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		SkipTests:      false,
		ImplicitScopes: []string{"java.lang"},
		Cache:          true,
	}
}

// Load reads the config file at path, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if !contains(cfg.ImplicitScopes, "java.lang") {
		cfg.ImplicitScopes = append(cfg.ImplicitScopes, "java.lang")
	}
	return cfg, nil
}

// LoadOrDefault loads <root>/.starfix.yaml when present and returns the
// defaults otherwise.
func LoadOrDefault(root string) (*Config, error) {
	path := filepath.Join(root, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(path)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
