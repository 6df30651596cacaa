// Package config provides configuration management for the LED Commander
// save-file tool.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration values for the tool.
type Config struct {
	Env string

	// LayoutPath points at an optional region-table overlay file (YAML).
	// Empty means the builtin table.
	LayoutPath string

	// Strict makes validation anomalies fail the validate command.
	Strict bool

	// ExportIndent pretty-prints JSON exports.
	ExportIndent bool
}

// Load loads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("LEDCOMMANDER_ENV", "development"),
		LayoutPath:   getEnv("LEDCOMMANDER_LAYOUT", ""),
		Strict:       getEnvBool("LEDCOMMANDER_STRICT", false),
		ExportIndent: getEnvBool("LEDCOMMANDER_EXPORT_INDENT", true),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
