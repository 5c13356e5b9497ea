package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/darthunder/bases/pkg/errors"
)

const fileHeader = "# bases configuration\n# Environment variables (BASES_SECTION__KEY) take precedence over this file.\n\n"

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(fileView(cfg)); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}

	data, err := Encode(Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}

// fileConfig mirrors Config with durations as strings so the file reads "10s".
type fileConfig struct {
	Relational fileRelational `toml:"relational"`
	Document   fileDocument   `toml:"document"`
	Output     Output         `toml:"output"`
}

type fileRelational struct {
	Driver         string `toml:"driver"`
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	Database       string `toml:"database"`
	User           string `toml:"user"`
	Password       string `toml:"password"`
	DSN            string `toml:"dsn"`
	MaxHintWidth   int    `toml:"max_hint_width"`
	ConnectTimeout string `toml:"connect_timeout"`
}

type fileDocument struct {
	URL       string `toml:"url"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Timeout   string `toml:"timeout"`
}

func fileView(cfg *Config) fileConfig {
	r, d := cfg.Relational, cfg.Document
	return fileConfig{
		Relational: fileRelational{
			Driver:         r.Driver,
			Host:           r.Host,
			Port:           r.Port,
			Database:       r.Database,
			User:           r.User,
			Password:       r.Password,
			DSN:            r.DSN,
			MaxHintWidth:   r.MaxHintWidth,
			ConnectTimeout: r.ConnectTimeout.String(),
		},
		Document: fileDocument{
			URL:       d.URL,
			Namespace: d.Namespace,
			Database:  d.Database,
			Username:  d.Username,
			Password:  d.Password,
			Timeout:   d.Timeout.String(),
		},
		Output: cfg.Output,
	}
}

// Entry is one flattened configuration value.
type Entry struct {
	Key   string
	Value interface{}
}

// Entries flattens cfg in file order, for display.
func (c Config) Entries() []Entry {
	r, d, o := c.Relational, c.Document, c.Output
	return []Entry{
		{"relational.driver", r.Driver},
		{"relational.host", r.Host},
		{"relational.port", r.Port},
		{"relational.database", r.Database},
		{"relational.user", r.User},
		{"relational.password", r.Password},
		{"relational.dsn", r.DSN},
		{"relational.max_hint_width", r.MaxHintWidth},
		{"relational.connect_timeout", r.ConnectTimeout.String()},
		{"document.url", d.URL},
		{"document.namespace", d.Namespace},
		{"document.database", d.Database},
		{"document.username", d.Username},
		{"document.password", d.Password},
		{"document.timeout", d.Timeout.String()},
		{"output.format", o.Format},
		{"output.no_color", o.NoColor},
		{"output.record_key_width", o.RecordKeyWidth},
		{"output.record_value_width", o.RecordValueWidth},
		{"output.record_fit", o.RecordFit},
	}
}
