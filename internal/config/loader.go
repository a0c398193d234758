package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and parses a semvermanager configuration file.
func LoadFromFile(path string) (*Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses semvermanager configuration from raw YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding path %q: %w", path, err)
	}
	return expanded, nil
}

// FindConfigFile returns the first of ConfigFileCandidates that exists under
// root, or "" when there is none.
func FindConfigFile(root string) string {
	return findFirst(root, ConfigFileCandidates)
}

// FindStoreFile returns the first of StoreFileCandidates that exists under
// root, or "" when there is none.
func FindStoreFile(root string) string {
	return findFirst(root, StoreFileCandidates)
}

func findFirst(root string, candidates []string) string {
	for _, name := range candidates {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
