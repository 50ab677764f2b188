// Package config loads application configuration from defaults,
// environment variables and command-line flag overrides, in that order.
package config

import (
	"os"
)

// Backend names for the task store.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the application
type Config struct {
	Storage StorageConfig
	Users   UsersConfig
	Display DisplayConfig
}

// StorageConfig selects and parameterises the task store backend
type StorageConfig struct {
	Backend string `env:"TODO_STORAGE_BACKEND"`
	DSN     string `env:"TODO_STORAGE_DSN"`
}

// UsersConfig holds user directory seeding configuration
type UsersConfig struct {
	SeedFile string `env:"TODO_USERS_FILE"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TODO_TIME_DISPLAY_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults. The
// default storage is the in-memory store; the sqlite backend defaults
// to an in-memory database so that nothing persists across restarts
// unless a file path is configured explicitly.
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendMemory,
			DSN:     ":memory:",
		},
		Users: UsersConfig{
			SeedFile: "",
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TODO_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dsn := os.Getenv("TODO_STORAGE_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}
	if seedFile := os.Getenv("TODO_USERS_FILE"); seedFile != "" {
		c.Users.SeedFile = seedFile
	}
	if format := os.Getenv("TODO_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of: memory, sqlite"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.DSN == "" {
		return &ConfigError{Field: "storage.dsn", Message: "dsn cannot be empty for the sqlite backend"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	return nil
}

// Load builds a configuration using the cascading strategy:
// defaults, then environment variables, then validation. Flag overrides
// are applied afterwards by the CLI layer.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
