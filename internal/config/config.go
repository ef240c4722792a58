// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Inputs []string `json:"inputs,omitempty"`  // Work-history JSON files to analyze
	OutDir string   `json:"out_dir,omitempty"` // Directory for analysis artifacts

	// Analysis
	TargetSkills []string `json:"target_skills,omitempty"` // Skills weighted in relevance scoring
	AsOf         string   `json:"as_of,omitempty"`         // Reference date (YYYY-MM-DD) for ongoing positions

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.AsOf); err != nil {
			return fmt.Errorf("config error: 'as_of' must be a YYYY-MM-DD date: %s", c.AsOf)
		}
	}

	// Validate file paths exist (if specified)
	for _, input := range c.Inputs {
		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply built-in defaults once config file values and CLI
// flags have been resolved.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.AsOf == "" {
		result.AsOf = defaults.AsOf
	}

	// Slice fields: use default if empty
	if len(result.Inputs) == 0 {
		result.Inputs = defaults.Inputs
	}
	if len(result.TargetSkills) == 0 {
		result.TargetSkills = defaults.TargetSkills
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
