// Package config loads the application configuration from a TOML file,
// creating it with defaults on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the remind configuration.
type Config struct {
	// DBPath is the sqlite database file. Empty means the default
	// location (~/.remind/remind.db). The REMIND_DB environment variable
	// overrides both.
	DBPath string `toml:"db_path"`
	// DefaultTimezone is the IANA timezone recorded on reminders created
	// without an explicit zone.
	DefaultTimezone string `toml:"default_timezone"`
}

const defaultConfigTOML = `# remind configuration

# Path to the sqlite database. Empty uses ~/.remind/remind.db.
db_path = ""

# IANA timezone recorded on new reminders.
default_timezone = "UTC"
`

// Dir returns the directory for remind config files, using XDG_CONFIG_HOME
// or the platform fallback.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "remind"), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, creating it with defaults if missing. The
// REMIND_DB environment variable overrides db_path when set.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return nil, fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return nil, fmt.Errorf("write default config: %w", wErr)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if env := os.Getenv("REMIND_DB"); env != "" {
		cfg.DBPath = env
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}

	return &cfg, nil
}
