// Package config provides configuration management functionality for the entercaptcha application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/connorhough/entercaptcha/internal/keyboard"
	"github.com/connorhough/entercaptcha/internal/logging"
	"github.com/connorhough/entercaptcha/internal/typer"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// AppName names the config directory and the environment prefix.
const AppName = "entercaptcha"

// Configuration keys.
const (
	KeyDelay        = "delay"
	KeyInterval     = "interval"
	KeySubmitKey    = "submit_key"
	KeyWindowFilter = "window_filter"
	KeyBackend      = "backend"
	KeyLogLevel     = "log_level"
)

// Settings is the resolved, validated configuration for one run.
type Settings struct {
	Delay        time.Duration
	Interval     time.Duration
	SubmitKey    keyboard.Key
	WindowFilter string
	Backend      string
	LogLevel     string
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault(KeyDelay, typer.DefaultDelay.String())
	viper.SetDefault(KeyInterval, typer.DefaultInterval.String())
	viper.SetDefault(KeySubmitKey, string(keyboard.KeyEnter))
	viper.SetDefault(KeyWindowFilter, "")
	viper.SetDefault(KeyBackend, keyboard.BackendAuto)
	viper.SetDefault(KeyLogLevel, "warn")
}

// Resolve reads the current viper state (flags, env, file, defaults) into Settings.
func Resolve() (*Settings, error) {
	delay, err := parseDuration(KeyDelay, viper.Get(KeyDelay))
	if err != nil {
		return nil, err
	}
	interval, err := parseDuration(KeyInterval, viper.Get(KeyInterval))
	if err != nil {
		return nil, err
	}
	key, err := keyboard.ParseKey(viper.GetString(KeySubmitKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeySubmitKey, err)
	}
	backend := strings.ToLower(viper.GetString(KeyBackend))
	if !keyboard.ValidBackend(backend) {
		return nil, fmt.Errorf("%s: %w %q", KeyBackend, keyboard.ErrUnknownBackend, backend)
	}
	level := viper.GetString(KeyLogLevel)
	if _, err := logging.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return &Settings{
		Delay:        delay,
		Interval:     interval,
		SubmitKey:    key,
		WindowFilter: viper.GetString(KeyWindowFilter),
		Backend:      backend,
		LogLevel:     level,
	}, nil
}

// Options converts the settings into typer options.
func (s *Settings) Options() typer.Options {
	return typer.Options{
		Delay:        s.Delay,
		Interval:     s.Interval,
		SubmitKey:    s.SubmitKey,
		WindowFilter: s.WindowFilter,
	}
}

// parseDuration accepts Go duration strings ("2s", "50ms") and bare numbers,
// which are taken as seconds ("0.05" or 2).
func parseDuration(key string, v any) (time.Duration, error) {
	var d time.Duration
	switch val := v.(type) {
	case time.Duration:
		d = val
	case string:
		s := strings.TrimSpace(val)
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			d = time.Duration(secs * float64(time.Second))
			break
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %q", key, val)
		}
		d = parsed
	default:
		secs, err := cast.ToFloat64E(val)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %v", key, val)
		}
		d = time.Duration(secs * float64(time.Second))
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %s", key, d)
	}
	return d, nil
}

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// Keys lists every configuration key SetValue accepts.
func Keys() []string {
	return []string{KeyDelay, KeyInterval, KeySubmitKey, KeyWindowFilter, KeyBackend, KeyLogLevel}
}

// ValidateValue checks value with the same parser Resolve applies to key.
func ValidateValue(key, value string) error {
	switch key {
	case KeyDelay, KeyInterval:
		_, err := parseDuration(key, value)
		return err
	case KeySubmitKey:
		if _, err := keyboard.ParseKey(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	case KeyBackend:
		if !keyboard.ValidBackend(value) {
			return fmt.Errorf("%s: %w %q", key, keyboard.ErrUnknownBackend, value)
		}
	case KeyLogLevel:
		if _, err := logging.ParseLevel(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	case KeyWindowFilter:
	default:
		return fmt.Errorf("unknown configuration key '%s' (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// SetValue validates value and writes only that key to the config file in
// use, creating the default file first when there is none. Values coming
// from the environment or flags are never persisted.
func SetValue(key string, value string) error {
	if err := ValidateValue(key, value); err != nil {
		return err
	}

	path := viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}
	if _, err := EnsureConfigExists(path); err != nil {
		return err
	}
	if err := writeKey(path, key, value); err != nil {
		return err
	}

	viper.Set(key, value)
	return nil
}

// Dir returns the directory searched first for config.yaml.
func Dir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the path config init writes to.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
