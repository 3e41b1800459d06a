package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/loggr/internal/timesheet"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
	Log     LogConfig
}

// StorageConfig selects where timesheets live.
type StorageConfig struct {
	Backend string
	Dir     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	TimeFormat string `mapstructure:"time_format"`
	Timezone   string
}

// LogConfig controls the log file. An empty Path discards logs.
type LogConfig struct {
	Path  string
	Debug bool
}

// DefaultDataDir is $XDG_DATA_HOME/loggr, falling back to ~/.local/share/loggr.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "loggr")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".local", "share", "loggr")
}

// DefaultPath is the config file used when neither a flag nor LOGGR_CONFIG
// names one.
func DefaultPath() string {
	if p := os.Getenv("LOGGR_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "loggr", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// LOGGR_. An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("storage.backend", "json")
	v.SetDefault("storage.dir", DefaultDataDir())
	v.SetDefault("ui.date_format", timesheet.DefaultDateLayout)
	v.SetDefault("ui.time_format", timesheet.DefaultTimeLayout)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("LOGGR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

// Save writes cfg as TOML to path (DefaultPath when empty), creating the
// directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.dir", cfg.Storage.Dir)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.time_format", cfg.UI.TimeFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.debug", cfg.Log.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Location resolves UI.Timezone. Empty and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	switch c.UI.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.UI.Timezone, err)
	}
	return loc, nil
}

// Clock builds the wall clock described by the UI section.
func (c Config) Clock() (timesheet.Clock, error) {
	loc, err := c.Location()
	if err != nil {
		return timesheet.Clock{}, err
	}
	return timesheet.SystemClock(loc, c.UI.DateFormat, c.UI.TimeFormat), nil
}
