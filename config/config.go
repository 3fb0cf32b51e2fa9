// Package config loads the registry configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverSQLite3  = "sqlite3"  // mattn/go-sqlite3 (cgo)
	DriverSQLite   = "sqlite"   // modernc.org/sqlite (pure Go)
	DriverPostgres = "postgres" // lib/pq
)

// ValidDrivers lists the accepted database.driver values.
var ValidDrivers = []string{DriverSQLite3, DriverSQLite, DriverPostgres}

// Config holds all registry configuration.
type Config struct {
	Database   Database   `yaml:"database"`
	Validation Validation `yaml:"validation"`
	Logging    Logging    `yaml:"logging"`
}

// Database selects the backing store.
type Database struct {
	Driver string `yaml:"driver"`
	// DSN is a file path for the SQLite drivers and a connection string for postgres.
	DSN string `yaml:"dsn"`
}

// Validation configures record checks before writes.
type Validation struct {
	// StrictEnums rejects enumerated fields outside their option sets.
	StrictEnums bool `yaml:"strict_enums"`
}

// Logging configures the zap logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: Database{
			Driver: DriverSQLite3,
			DSN:    "erp.db",
		},
		Logging: Logging{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ERP_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("ERP_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("ERP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ERP_STRICT_ENUMS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ERP_STRICT_ENUMS %q: %w", v, err)
		}
		c.Validation.StrictEnums = strict
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidDrivers, c.Database.Driver) {
		return fmt.Errorf("invalid database driver %q: must be one of %v", c.Database.Driver, ValidDrivers)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	return nil
}

// IsSQLite reports whether the configured driver is one of the SQLite drivers.
func (d Database) IsSQLite() bool {
	return d.Driver == DriverSQLite3 || d.Driver == DriverSQLite
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
