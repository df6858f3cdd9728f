// Package config loads sqlstage command settings from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/querystage/sqlstage"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a single sqlstage run.
type Config struct {
	Dialect  string         `yaml:"dialect"`
	Logging  LoggingConfig  `yaml:"logging"`
	Query    QueryConfig    `yaml:"query"`
	Database DatabaseConfig `yaml:"database"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// QueryConfig describes a statement. Empty clauses are left unassigned.
type QueryConfig struct {
	Select []string      `yaml:"select"`
	From   string        `yaml:"from"`
	Where  string        `yaml:"where"`
	Args   []interface{} `yaml:"args"`
	Strict bool          `yaml:"strict"` // refuse incomplete statements
}

// DatabaseConfig points at a database to run the statement against.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dialect: "none",
		Logging: LoggingConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that can be checked without running a statement.
func (c *Config) Validate() error {
	if _, err := sqlstage.DialectByName(c.Dialect); err != nil {
		return err
	}
	if c.Database.DSN != "" && c.Database.Driver == "" {
		return fmt.Errorf("database driver required for dsn %q", c.Database.DSN)
	}
	return nil
}

// Apply assigns the configured clauses to b in order.
// Failures are kept by b and reported by its Err and Build methods.
func (q QueryConfig) Apply(b *sqlstage.Builder) *sqlstage.Builder {
	if len(q.Select) > 0 {
		b.Select(q.Select...)
	}
	if q.From != "" {
		b.From(q.From)
	}
	if q.Where != "" {
		b.Where(q.Where, q.Args...)
	}
	return b
}
