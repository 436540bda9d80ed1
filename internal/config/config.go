// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cablesize/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Defaults contains per-request fallbacks
	Defaults DefaultsConfig `json:"defaults"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Cache contains result-cache configuration
	Cache CacheConfig `json:"cache"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DefaultsConfig contains fallbacks applied when a request omits a value
type DefaultsConfig struct {
	// Standard is the default framework (iec, nec)
	Standard string `json:"standard"`

	// SystemVoltage is the default nominal voltage
	SystemVoltage float64 `json:"system_voltage"`

	// MaxVoltageDropPercent is the default drop limit
	MaxVoltageDropPercent float64 `json:"max_voltage_drop_percent"`

	// AmbientTempC is the default ambient temperature
	AmbientTempC float64 `json:"ambient_temp_c"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in terminal output
	NoColor bool `json:"no_color"`
}

// CacheConfig contains result-cache settings
type CacheConfig struct {
	// Enabled enables result memoization
	Enabled bool `json:"enabled"`

	// MaxEntries is the LRU capacity
	MaxEntries int `json:"max_entries"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Defaults: DefaultsConfig{
			Standard:              "iec",
			SystemVoltage:         230,
			MaxVoltageDropPercent: 3.0,
			AmbientTempC:          30,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1024,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
