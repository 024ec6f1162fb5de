package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := withConfigHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "memorymatch", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `grid_size = 4`)
	assert.Contains(t, string(data), `match_delay = "600ms"`)
	assert.Contains(t, string(data), `mismatch_delay = "1s"`)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, `
grid_size = 6
palette = "/tmp/animals.toml"
match_delay = "250ms"
mismatch_delay = "2s"
log_level = "debug"
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.GridSize)
	assert.Equal(t, "/tmp/animals.toml", cfg.Palette)
	assert.Equal(t, 250*time.Millisecond, cfg.MatchDelay.Std())
	assert.Equal(t, 2*time.Second, cfg.MismatchDelay.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingKeysKeepDefaults(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, "grid_size = 2\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.GridSize)
	assert.Equal(t, Default().MismatchDelay, cfg.MismatchDelay)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"odd grid size", "grid_size = 5\n"},
		{"bad duration", "match_delay = \"soon\"\n"},
		{"zero delay", "mismatch_delay = \"0s\"\n"},
		{"unknown log level", "log_level = \"chatty\"\n"},
		{"not toml", "grid_size = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfigHome(t)
			writeConfig(t, tt.body)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSetGridSize(t *testing.T) {
	withConfigHome(t)

	require.NoError(t, SetGridSize(6))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.GridSize)

	assert.Error(t, SetGridSize(3))
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.GridSize, "rejected size is not written")
}

func TestXDGFallbacks(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHome())
	assert.Equal(t, filepath.Join(home, ".local", "state"), GetXDGStateHome())
	assert.Equal(t, filepath.Join(home, ".local", "state", "memorymatch", "play.log"), DefaultLogFilePath())
}
