package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MAXGAS_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ScreenHome, cfg.UI.StartScreen)
	require.Equal(t, 1500*time.Millisecond, cfg.UI.SubmitDelay)
	require.Equal(t, filepath.Join(home, ".local", "state", "maxgas", "maxgas.log"), cfg.Log.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Journal.Enabled)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "maxgas.toml")
	body := []byte(`[ui]
start_screen = "login"
submit_delay = "250ms"

[journal]
enabled = true
path = "/tmp/maxgas-journal.db"
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))
	t.Setenv("MAXGAS_CONFIG", path)
	t.Setenv("MAXGAS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ScreenLogin, cfg.UI.StartScreen)
	require.Equal(t, 250*time.Millisecond, cfg.UI.SubmitDelay)
	require.True(t, cfg.Journal.Enabled)
	require.Equal(t, "/tmp/maxgas-journal.db", cfg.Journal.Path)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("MAXGAS_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownScreen(t *testing.T) {
	isolate(t)
	t.Setenv("MAXGAS_UI_START_SCREEN", "settings")
	_, err := Load()
	require.ErrorContains(t, err, "ui.start_screen")
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")
	t.Setenv("MAXGAS_CONFIG", path)

	want := Config{
		UI:      UIConfig{StartScreen: ScreenLogin, SubmitDelay: 2 * time.Second},
		Log:     LogConfig{Path: "/tmp/maxgas.log", Level: "info"},
		Journal: JournalConfig{Enabled: false, Path: "/tmp/j.db"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
