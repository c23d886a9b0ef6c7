package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/sadopc/fittrack/internal/stats"
)

type Config struct {
	DBPath string `toml:"db_path"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	LogToStderr bool   `toml:"log_to_stderr"`

	Goals stats.Goals `toml:"goals"`
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Goals:    stats.DefaultGoals(),
	}
}

// DefaultPath returns ~/.config/fittrack/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fittrack", "config.toml"), nil
}

// Load reads the TOML file at path over the defaults. A missing file is not an
// error. Empty paths are filled in next to the config directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "fittrack.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dir, "fittrack.log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if !isLogLevel(c.LogLevel) {
		err = multierr.Append(err, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if c.Goals.Calories <= 0 {
		err = multierr.Append(err, fmt.Errorf("goals.calories must be positive, got %d", c.Goals.Calories))
	}
	if c.Goals.Water <= 0 {
		err = multierr.Append(err, fmt.Errorf("goals.water must be positive, got %d", c.Goals.Water))
	}
	if c.Goals.Steps <= 0 {
		err = multierr.Append(err, fmt.Errorf("goals.steps must be positive, got %d", c.Goals.Steps))
	}
	if c.Goals.Sleep <= 0 {
		err = multierr.Append(err, fmt.Errorf("goals.sleep must be positive, got %g", c.Goals.Sleep))
	}
	if c.Goals.Workouts <= 0 {
		err = multierr.Append(err, fmt.Errorf("goals.workouts must be positive, got %d", c.Goals.Workouts))
	}
	return err
}

func isLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
