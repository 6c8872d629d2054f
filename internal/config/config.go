// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format    string `yaml:"format"`
		Checks    string `yaml:"checks"`
		DocType   string `yaml:"doc_type"`
		Verbose   bool   `yaml:"verbose"`
		NoColor   bool   `yaml:"no_color"`
		ShowMatch bool   `yaml:"show_match"`
	} `yaml:"defaults"`

	// Suppression rule file used when the flag is not given
	Suppressions struct {
		File string `yaml:"file"`
	} `yaml:"suppressions"`

	// Profiles for different filing scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Checks      string `yaml:"checks"`
	DocType     string `yaml:"doc_type"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"no_color"`
	ShowMatch   bool   `yaml:"show_match"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"

	// Built-in profile for automated filing gates: machine-readable
	// output, no terminal colors
	config.Profiles["filing-gate"] = Profile{
		Format:      "json",
		Checks:      "all",
		NoColor:     true,
		Description: "Optimized for CI filing gates with JSON output and all checks",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// built-in defaults when the file cannot be read or parsed.
func LoadConfigOrDefault(configFile string) *Config {
	config, err := LoadConfig(configFile)
	if err != nil {
		fallback, _ := LoadConfig("")
		return fallback
	}
	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	if fileExists(".frcp-scan.yaml") {
		return ".frcp-scan.yaml"
	}
	if fileExists("frcp-scan.yaml") {
		return "frcp-scan.yaml"
	}

	// Check the user's home directory
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".frcp-scan.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the names of all defined profiles in sorted order
func (c *Config) ListProfiles() []string {
	var names []string
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetProfile returns the named profile, or nil if it does not exist
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig checks the configuration for invalid values
func ValidateConfig(config *Config) error {
	if err := validateFormat(config.Defaults.Format); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for name, profile := range config.Profiles {
		if profile.Format == "" {
			continue
		}
		if err := validateFormat(profile.Format); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

var knownFormats = map[string]bool{
	"text": true,
	"json": true,
	"csv":  true,
	"yaml": true,
}

func validateFormat(format string) error {
	if format == "" {
		return nil
	}
	if !knownFormats[format] {
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
