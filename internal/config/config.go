// Package config provides configuration file support for pingsim.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the pingsim configuration file structure.
type Config struct {
	// Defaults are applied when flags are not specified
	Defaults Defaults `yaml:"defaults"`

	// Aliases for common destinations
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// Defaults holds default values for simulation parameters.
type Defaults struct {
	// Output mode
	TUI     bool `yaml:"tui"`
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
	CSV     bool `yaml:"csv"`
	NoColor bool `yaml:"no_color"`

	// Simulation parameters
	Source       string `yaml:"source"`
	Count        int    `yaml:"count"`
	Size         int    `yaml:"size"`
	Trace        bool   `yaml:"trace"`
	Reproducible bool   `yaml:"reproducible"`
	NoDelay      bool   `yaml:"no_delay"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			TUI:          false,
			Verbose:      false,
			JSON:         false,
			CSV:          false,
			NoColor:      false,
			Source:       "192.168.1.10",
			Count:        4,
			Size:         56,
			Trace:        false,
			Reproducible: false,
			NoDelay:      false,
		},
		Aliases: make(map[string]string),
	}
}

// Load reads configuration from the default config file locations.
// It searches in order:
//  1. ./pingsim.yaml (current directory)
//  2. ~/.config/pingsim/config.yaml (Linux/macOS)
//  3. %APPDATA%\pingsim\config.yaml (Windows)
//
// If no config file is found, returns default configuration.
func Load() (*Config, error) {
	paths := getConfigPaths()

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return LoadFrom(path)
		}
	}

	// No config file found, return defaults
	return DefaultConfig(), nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the configuration to the default user config path.
func (c *Config) Save() error {
	return c.SaveTo(getUserConfigPath())
}

// SaveTo writes the configuration to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// getConfigPaths returns the list of config file paths to search.
func getConfigPaths() []string {
	paths := []string{
		"pingsim.yaml",
		"pingsim.yml",
		".pingsim.yaml",
		".pingsim.yml",
	}

	userPath := getUserConfigPath()
	if userPath != "" {
		paths = append(paths, userPath)
	}

	return paths
}

// getUserConfigPath returns the user-specific config file path.
func getUserConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "pingsim", "config.yaml")
		}
	default: // Linux, macOS, etc.
		home, err := os.UserHomeDir()
		if err == nil {
			xdgConfig := os.Getenv("XDG_CONFIG_HOME")
			if xdgConfig != "" {
				return filepath.Join(xdgConfig, "pingsim", "config.yaml")
			}
			return filepath.Join(home, ".config", "pingsim", "config.yaml")
		}
	}
	return ""
}

// GetConfigPath returns the path where user config would be saved.
func GetConfigPath() string {
	return getUserConfigPath()
}

// GenerateExample generates an example configuration file content.
func GenerateExample() string {
	return `# pingsim Configuration File
# Location: ~/.config/pingsim/config.yaml (Linux/macOS)
#           %APPDATA%\pingsim\config.yaml (Windows)
#           ./pingsim.yaml (current directory)

defaults:
  # Output mode (only one should be true)
  tui: false              # Interactive TUI mode
  verbose: false          # Detailed table output
  json: false             # JSON output
  csv: false              # CSV output
  no_color: false         # Disable colors

  # Simulation parameters
  source: 192.168.1.10    # Simulated source address
  count: 4                # Ping probes per session (1-20)
  size: 56                # Payload size in bytes (8-1500)
  trace: false            # Run traceroute before the ping phase
  reproducible: false     # Same source/destination -> same transcript
  no_delay: false         # Skip simulated inter-probe pauses

# Destination aliases (optional)
aliases:
  dns: 8.8.8.8
  cf: 1.1.1.1
  gw: 192.168.1.1
`
}
