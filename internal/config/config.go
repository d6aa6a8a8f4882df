// Package config provides workspace configuration management,
// including reading and writing the lexpr configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the per-workspace configuration file, looked up in
// the directory the CLI runs from.
const ConfigFileName = ".lexpr.json"

// Config represents the workspace configuration
type Config struct {
	DefaultPlan *string `json:"defaultPlan,omitempty"`
	Target      *string `json:"target,omitempty"`
}

// GetConfig reads the workspace configuration from dir
func GetConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// GetDefaultPlanPath returns the configured plan path, or "plan.json"
// as default
func GetDefaultPlanPath(dir string) (string, error) {
	config, err := GetConfig(dir)
	if err != nil {
		return "", err
	}

	if config.DefaultPlan != nil && *config.DefaultPlan != "" {
		return *config.DefaultPlan, nil
	}

	return "plan.json", nil
}

// GetTarget returns the configured merge target branch, or "main" as
// default
func GetTarget(dir string) (string, error) {
	config, err := GetConfig(dir)
	if err != nil {
		return "", err
	}

	if config.Target != nil && *config.Target != "" {
		return *config.Target, nil
	}

	return "main", nil
}

// SetTarget writes the merge target branch to the workspace config
func SetTarget(dir string, target string) error {
	configPath := filepath.Join(dir, ConfigFileName)

	config, err := GetConfig(dir)
	if err != nil {
		config = &Config{}
	}
	config.Target = &target

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}
