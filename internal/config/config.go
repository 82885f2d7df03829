// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the verifier configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Model tier: lite, standard, advanced
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Reconciliation. A threshold of 0 is reserved for "unset": it reads as
	// the built-in default, not as a cutoff that matches everything.
	FieldThreshold   int    `json:"field_threshold,omitempty"`   // Per-field match cutoff (1-100, 0 = default)
	VerdictThreshold int    `json:"verdict_threshold,omitempty"` // Overall verdict cutoff (1-100, 0 = default)
	Resolver         string `json:"resolver,omitempty"`          // Key resolution strategy: alias, scored
	CollisionPolicy  string `json:"collision_policy,omitempty"`  // Flattener collision policy: keep_last, keep_first, keep_all
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
	if c.FieldThreshold < 0 || c.FieldThreshold > 100 {
		return fmt.Errorf("config error: 'field_threshold' must be between 0 and 100")
	}
	if c.VerdictThreshold < 0 || c.VerdictThreshold > 100 {
		return fmt.Errorf("config error: 'verdict_threshold' must be between 0 and 100")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	switch c.Resolver {
	case "", "alias", "scored":
	default:
		return fmt.Errorf("config error: 'resolver' must be one of: alias, scored")
	}

	switch c.CollisionPolicy {
	case "", "keep_last", "keep_first", "keep_all":
	default:
		return fmt.Errorf("config error: 'collision_policy' must be one of: keep_last, keep_first, keep_all")
	}

	switch c.Model {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'model' must be one of: lite, standard, advanced")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Resolver == "" {
		result.Resolver = defaults.Resolver
	}
	if result.CollisionPolicy == "" {
		result.CollisionPolicy = defaults.CollisionPolicy
	}

	// Int fields: use default if zero. For the thresholds this makes 0
	// indistinguishable from unset, which is deliberate; see the field docs.
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FieldThreshold == 0 {
		result.FieldThreshold = defaults.FieldThreshold
	}
	if result.VerdictThreshold == 0 {
		result.VerdictThreshold = defaults.VerdictThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
