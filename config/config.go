// Package config holds the settings of the valveflow command: puzzle
// parameters, search tuning and logging. Values come from defaults, then an
// optional YAML file, then VALVEFLOW_* environment variables; command-line
// flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the top-level configuration.
type Config struct {
	// Start is the valve both agents begin at.
	Start string `yaml:"start"`

	// Solo contains the single-agent budget.
	Solo SoloConfig `yaml:"solo"`

	// Duo contains the two-agent budgets.
	Duo DuoConfig `yaml:"duo"`

	// Search contains solver tuning.
	Search SearchConfig `yaml:"search"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

type SoloConfig struct {
	Minutes int `yaml:"minutes"`
}

type DuoConfig struct {
	Minutes1 int `yaml:"minutes1"`
	Minutes2 int `yaml:"minutes2"`
}

type SearchConfig struct {
	Workers int           `yaml:"workers"`
	Memo    bool          `yaml:"memo"`
	Timeout time.Duration `yaml:"timeout"` // 0 = no limit
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the puzzle defaults: start AA, 30 minutes alone, 26 each
// for two agents, sequential memoized search, info-level text logs.
func Default() Config {
	return Config{
		Start: "AA",
		Solo:  SoloConfig{Minutes: 30},
		Duo:   DuoConfig{Minutes1: 26, Minutes2: 26},
		Search: SearchConfig{
			Workers: 1,
			Memo:    true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (if non-empty)
// and then with environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overlays VALVEFLOW_* variables. Unparsable numbers are errors,
// not silently ignored.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("VALVEFLOW_START"); v != "" {
		cfg.Start = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{"VALVEFLOW_SOLO_MINUTES", &cfg.Solo.Minutes},
		{"VALVEFLOW_DUO_MINUTES1", &cfg.Duo.Minutes1},
		{"VALVEFLOW_DUO_MINUTES2", &cfg.Duo.Minutes2},
		{"VALVEFLOW_WORKERS", &cfg.Search.Workers},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.name, v, err)
		}
		*e.dst = i
	}
	if v := os.Getenv("VALVEFLOW_MEMO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: VALVEFLOW_MEMO=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Search.Memo = b
	}
	if v := os.Getenv("VALVEFLOW_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: VALVEFLOW_TIMEOUT=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Search.Timeout = d
	}
	if v := os.Getenv("VALVEFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("VALVEFLOW_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start must not be empty", ErrInvalidConfig)
	}
	if c.Solo.Minutes < 0 {
		return fmt.Errorf("%w: solo.minutes must be >= 0", ErrInvalidConfig)
	}
	if c.Duo.Minutes1 < 0 || c.Duo.Minutes2 < 0 {
		return fmt.Errorf("%w: duo minutes must be >= 0", ErrInvalidConfig)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers must be >= 1", ErrInvalidConfig)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// SlogLevel maps Level onto a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q: %v", ErrInvalidConfig, l.Level, err)
	}

	return lvl, nil
}
