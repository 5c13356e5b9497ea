package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/testutil"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DriverOracle, cfg.Relational.Driver)
	assert.Equal(t, "localhost", cfg.Relational.Host)
	assert.Equal(t, 1521, cfg.Relational.Port)
	assert.Equal(t, "XE", cfg.Relational.Database)
	assert.Equal(t, 40, cfg.Relational.MaxHintWidth)
	assert.Equal(t, 10*time.Second, cfg.Relational.ConnectTimeout)

	assert.Equal(t, "usuariosDB", cfg.Document.Database)
	assert.Equal(t, "bases", cfg.Document.Namespace)

	assert.Equal(t, "box", cfg.Output.Format)
	assert.Equal(t, 15, cfg.Output.RecordKeyWidth)
	assert.Equal(t, 10, cfg.Output.RecordValueWidth)
	assert.False(t, cfg.Output.RecordFit)
}

func TestLoadLayers(t *testing.T) {
	t.Run("user_file_from_xdg", func(t *testing.T) {
		env := testutil.Isolate(t)
		testutil.CreateFile(t, env.ConfigDir, filepath.Join(AppDirName, FileName), `
[relational]
driver = "postgres"
port = 5432
database = "tienda"
`)
		assert.Equal(t, env.ConfigFile(), DefaultPath())

		cfg, err := Load(LoadOptions{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, cfg.Relational.Driver)
		assert.Equal(t, 5432, cfg.Relational.Port)
		assert.Equal(t, "tienda", cfg.Relational.Database)
		// untouched keys keep their defaults
		assert.Equal(t, "localhost", cfg.Relational.Host)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		env := testutil.Isolate(t)
		path := testutil.CreateFile(t, env.Root, "custom.toml", "[relational]\nhost = \"db.local\"\n")

		t.Setenv("BASES_RELATIONAL__HOST", "db.env")
		t.Setenv("BASES_RELATIONAL__MAX_HINT_WIDTH", "25")
		t.Setenv("BASES_OUTPUT__RECORD_FIT", "true")

		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, "db.env", cfg.Relational.Host)
		assert.Equal(t, 25, cfg.Relational.MaxHintWidth)
		assert.True(t, cfg.Output.RecordFit)
	})

	t.Run("overrides_win", func(t *testing.T) {
		testutil.Isolate(t)
		t.Setenv("BASES_OUTPUT__FORMAT", "yaml")

		cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
			"output.format":   "JSON",
			"output.no_color": true,
		}})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.True(t, cfg.Output.NoColor)
	})

	t.Run("missing_explicit_file", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		env := testutil.Isolate(t)
		path := testutil.CreateFile(t, env.Root, "bad.toml", "[relational\nhost=")

		_, err := Load(LoadOptions{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"unknown_driver", func(c *Config) { c.Relational.Driver = "sqlite" }, "relational.driver"},
		{"empty_host", func(c *Config) { c.Relational.Host = "" }, "relational.host"},
		{"bad_port", func(c *Config) { c.Relational.Port = 70000 }, "relational.port"},
		{"negative_hint", func(c *Config) { c.Relational.MaxHintWidth = -1 }, "relational.max_hint_width"},
		{"empty_document_url", func(c *Config) { c.Document.URL = "" }, "document.url"},
		{"unknown_format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"zero_record_width", func(c *Config) { c.Output.RecordKeyWidth = 0 }, "output.record_key_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}

	t.Run("dsn_skips_host_checks", func(t *testing.T) {
		cfg := Default()
		cfg.Relational.Host = ""
		cfg.Relational.Port = 0
		cfg.Relational.DSN = "oracle://system:123@db:1521/XE"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("fit_allows_zero_widths", func(t *testing.T) {
		cfg := Default()
		cfg.Output.RecordFit = true
		cfg.Output.RecordKeyWidth = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestWriteDefault(t *testing.T) {
	env := testutil.Isolate(t)
	path := filepath.Join(env.Root, "nested", FileName)

	require.NoError(t, WriteDefault(path, false))
	require.True(t, testutil.FileExists(t, path))

	data := testutil.ReadFile(t, path)
	assert.Contains(t, data, `connect_timeout = '10s'`)
	assert.Contains(t, data, "[relational]")

	cfg, err := Load(LoadOptions{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	assert.NoError(t, WriteDefault(path, true))
}

func TestRedactedAndEntries(t *testing.T) {
	cfg := Default()
	red := cfg.Redacted()

	assert.Equal(t, "****", red.Relational.Password)
	assert.Equal(t, "123", cfg.Relational.Password)

	entries := red.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "relational.driver", entries[0].Key)
	assert.Equal(t, "output.record_fit", entries[len(entries)-1].Key)
	for _, e := range entries {
		if e.Key == "document.password" {
			assert.Equal(t, "****", e.Value)
		}
	}
}
