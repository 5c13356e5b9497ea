package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Env describes the directories of an isolated test environment
type Env struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// ConfigFile returns the path the application reads its user config from
func (e Env) ConfigFile() string {
	return filepath.Join(e.ConfigDir, "bases", "config.toml")
}

// Isolate sets XDG_CONFIG_HOME and XDG_STATE_HOME to fresh temporary
// directories, sets NO_COLOR and clears every BASES_ variable for the
// duration of the test.
func Isolate(t *testing.T) Env {
	t.Helper()

	root := t.TempDir()
	env := Env{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("NO_COLOR", "1")

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "BASES_") {
			// t.Setenv restores the original value on cleanup
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	return env
}
