package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Log     LogConfig
	Journal JournalConfig
}

// UIConfig holds screen behaviour.
type UIConfig struct {
	StartScreen string        `mapstructure:"start_screen"`
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
}

// LogConfig points the submission log somewhere other than the terminal,
// which the UI owns while running.
type LogConfig struct {
	Path  string
	Level string
}

// JournalConfig holds sqlite settings for the submission journal.
type JournalConfig struct {
	Enabled bool
	Path    string
}

const (
	ScreenHome  = "home"
	ScreenLogin = "login"
)

// Load reads configuration from file and env. Env var overrides use prefix MAXGAS_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("ui.start_screen", ScreenHome)
	v.SetDefault("ui.submit_delay", "1500ms")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "maxgas", "maxgas.log"))
	v.SetDefault("log.level", "debug")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(home, ".local", "share", "maxgas", "journal.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MAXGAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "maxgas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MAXGAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a missing default file is fine, an explicit MAXGAS_CONFIG is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the UI cannot run with.
func (c Config) Validate() error {
	switch c.UI.StartScreen {
	case ScreenHome, ScreenLogin:
	default:
		return fmt.Errorf("ui.start_screen: unknown screen %q", c.UI.StartScreen)
	}
	if c.UI.SubmitDelay < 0 {
		return fmt.Errorf("ui.submit_delay: must not be negative, got %s", c.UI.SubmitDelay)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("journal.path: required when journal is enabled")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("MAXGAS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "maxgas", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.start_screen", cfg.UI.StartScreen)
	v.Set("ui.submit_delay", cfg.UI.SubmitDelay.String())
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
