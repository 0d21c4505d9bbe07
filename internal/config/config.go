// Package config loads tada settings from defaults, ~/.tada/config.toml,
// TADA_* environment variables and root flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	dirName        = ".tada"
	configFileName = "config.toml"
)

// Config holds user settings.
type Config struct {
	Title    string `toml:"title"`
	Theme    string `toml:"theme"`
	Group    bool   `toml:"group"`
	LogLevel string `toml:"log_level"`
}

// Overrides are values set explicitly on the command line. Nil means unset.
type Overrides struct {
	Title    *string
	Theme    *string
	Group    *bool
	LogLevel *string
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:    "Todos",
		Theme:    "classic",
		LogLevel: "warn",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is ~/.tada/config.toml.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load layers defaults, the file at path (DefaultPath when empty), the
// environment and ov. A missing file is not an error.
func Load(path string, ov Overrides) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := loadFile(&cfg, path); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	if err := loadFromEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	ov.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read file: %w", err)
	}
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return fmt.Errorf("toml decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("unknown key %q", undec[0].String())
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TADA_TITLE")); v != "" {
		cfg.Title = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_GROUP")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_GROUP: %w", err)
		}
		cfg.Group = b
	}
	return nil
}

func (ov Overrides) apply(cfg *Config) {
	if ov.Title != nil {
		cfg.Title = *ov.Title
	}
	if ov.Theme != nil {
		cfg.Theme = *ov.Theme
	}
	if ov.Group != nil {
		cfg.Group = *ov.Group
	}
	if ov.LogLevel != nil {
		cfg.LogLevel = *ov.LogLevel
	}
}

// Validate rejects unknown themes and log levels.
func (c *Config) Validate() error {
	if !ui.IsTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes, ", "))
	}
	ok := false
	for _, l := range logLevels {
		if strings.EqualFold(l, c.LogLevel) {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}
	return nil
}
