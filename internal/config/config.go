// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	StorageDir string `json:"storage_dir,omitempty"` // Directory for stored drafts and the profile
	Posting    string `json:"posting,omitempty"`     // Path to job posting file (text or HTML)

	// Behavior
	APIKey   string `json:"api_key,omitempty"`  // Gemini API key; heuristic analysis is used without it
	Model    string `json:"model,omitempty"`    // Gemini model name override
	Reviewer string `json:"reviewer,omitempty"` // Default reviewer name recorded on decisions
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed analysis and match output
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
	if c.Posting != "" {
		if _, err := os.Stat(c.Posting); os.IsNotExist(err) {
			return fmt.Errorf("config error: posting file not found: %s", c.Posting)
		}
	}

	if c.StorageDir != "" {
		info, err := os.Stat(c.StorageDir)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: storage_dir is not a directory: %s", c.StorageDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.Posting == "" {
		result.Posting = defaults.Posting
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Reviewer == "" {
		result.Reviewer = defaults.Reviewer
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultConfig returns the built-in defaults applied when neither a config
// file nor a CLI flag provides a value.
func DefaultConfig() Config {
	return Config{
		StorageDir: "data",
	}
}
