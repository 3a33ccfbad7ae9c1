// Package config provides configuration loading and management for
// voxelfilter3d. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Processing parameters
	Processing struct {
		// Workers specifies how many worker goroutines to use for a
		// filtering pass; 0 selects one worker per CPU
		Workers int `yaml:"workers"`

		// Radius holds the per-axis half-window extents (1 to 3 values:
		// x, y, z)
		Radius []int `yaml:"radius"`

		// Filter is the name of the scoring strategy to apply
		Filter string `yaml:"filter"`
	} `yaml:"processing"`

	// Output parameters
	Output struct {
		// Verbose controls progress output during processing
		Verbose bool `yaml:"verbose"`

		// ExportSlices determines whether filtered slices are saved as
		// images after the pass
		ExportSlices bool `yaml:"exportSlices"`

		// SlicesDir is the directory where exported slices are written
		SlicesDir string `yaml:"slicesDir"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default processing parameters
	cfg.Processing.Workers = runtime.NumCPU()
	cfg.Processing.Radius = []int{1, 1, 1}
	cfg.Processing.Filter = "localmax"

	// Set default output parameters
	cfg.Output.Verbose = true
	cfg.Output.ExportSlices = false
	cfg.Output.SlicesDir = "filtered_slices"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
