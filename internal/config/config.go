// Package config holds the cfi tool configuration. Settings come from an
// optional YAML file and are overridden by command-line flags; the core
// validation engine itself takes no configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats for command results.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all cfi configuration.
type Config struct {
	// TaxonomyPath points to a custom taxonomy schema file. Empty means the
	// built-in ISO 10962 reference data.
	TaxonomyPath string `yaml:"taxonomy_path"`

	// Output selects the default output format: text or json.
	Output string `yaml:"output"`

	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: FormatText,
	}
}

// DefaultPath is the conventional config location under the user's home
// directory. Returns empty when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cfi", "config.yaml")
}

// Load reads configuration from a YAML file, applying defaults for missing
// fields. A missing file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Output {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output, FormatText, FormatJSON)
	}
}
