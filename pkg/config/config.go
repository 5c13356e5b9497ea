package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/darthunder/bases/pkg/errors"
)

// Supported relational drivers.
const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Supported output formats. Kept here so validation does not depend on pkg/output.
var validFormats = []string{"box", "json", "yaml", "xml"}

// Config is the effective application configuration.
type Config struct {
	Relational Relational `koanf:"relational" toml:"relational"`
	Document   Document   `koanf:"document" toml:"document"`
	Output     Output     `koanf:"output" toml:"output"`
}

// Relational holds the connection settings for the products and sales database.
type Relational struct {
	Driver string `koanf:"driver" toml:"driver"`
	Host   string `koanf:"host" toml:"host"`
	Port   int    `koanf:"port" toml:"port"`
	// Database is the Oracle service name or the database name for the other drivers.
	Database       string        `koanf:"database" toml:"database"`
	User           string        `koanf:"user" toml:"user"`
	Password       string        `koanf:"password" toml:"password"`
	DSN            string        `koanf:"dsn" toml:"dsn"`
	MaxHintWidth   int           `koanf:"max_hint_width" toml:"max_hint_width"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" toml:"connect_timeout"`
}

// Document holds the connection settings for the users store.
type Document struct {
	URL       string        `koanf:"url" toml:"url"`
	Namespace string        `koanf:"namespace" toml:"namespace"`
	Database  string        `koanf:"database" toml:"database"`
	Username  string        `koanf:"username" toml:"username"`
	Password  string        `koanf:"password" toml:"password"`
	Timeout   time.Duration `koanf:"timeout" toml:"timeout"`
}

// Output controls how tables and records are printed.
type Output struct {
	Format           string `koanf:"format" toml:"format"`
	NoColor          bool   `koanf:"no_color" toml:"no_color"`
	RecordKeyWidth   int    `koanf:"record_key_width" toml:"record_key_width"`
	RecordValueWidth int    `koanf:"record_value_width" toml:"record_value_width"`
	RecordFit        bool   `koanf:"record_fit" toml:"record_fit"`
}

// Validate checks the values that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Relational.Driver {
	case DriverOracle, DriverPostgres, DriverMySQL:
	default:
		return errors.Newf(errors.ErrConfigValid, "unsupported relational driver %q", c.Relational.Driver).
			WithDetail("key", "relational.driver")
	}

	if c.Relational.DSN == "" {
		if c.Relational.Host == "" {
			return invalid("relational.host", "must not be empty")
		}
		if c.Relational.Port <= 0 || c.Relational.Port > 65535 {
			return invalid("relational.port", fmt.Sprintf("out of range: %d", c.Relational.Port))
		}
	}

	if c.Relational.MaxHintWidth < 0 {
		return invalid("relational.max_hint_width", "must not be negative")
	}

	if c.Document.URL == "" {
		return invalid("document.url", "must not be empty")
	}
	if c.Document.Namespace == "" || c.Document.Database == "" {
		return invalid("document.namespace", "namespace and database are required")
	}

	if !isValidFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format").
			WithDetail("valid", strings.Join(validFormats, ", "))
	}
	if !c.Output.RecordFit && (c.Output.RecordKeyWidth <= 0 || c.Output.RecordValueWidth <= 0) {
		return invalid("output.record_key_width", "record widths must be positive unless record_fit is set")
	}

	return nil
}

// Redacted returns a copy with passwords masked, suitable for display.
func (c Config) Redacted() Config {
	if c.Relational.Password != "" {
		c.Relational.Password = "****"
	}
	if c.Document.Password != "" {
		c.Document.Password = "****"
	}
	if c.Relational.DSN != "" {
		c.Relational.DSN = "****"
	}
	return c
}

func isValidFormat(f string) bool {
	for _, v := range validFormats {
		if strings.EqualFold(v, f) {
			return true
		}
	}
	return false
}

func invalid(key, msg string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %s", key, msg).WithDetail("key", key)
}
