// Package config holds the viper-backed configuration for usher.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hallward/usher/internal/ledger"
	"github.com/hallward/usher/internal/logging"
	"github.com/hallward/usher/internal/store"
)

// Config represents the complete usher configuration
type Config struct {
	Theater TheaterConfig `mapstructure:"theater"`
	State   StateConfig   `mapstructure:"state"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TheaterConfig describes the seating geometry.
// Rows run from FirstRow to LastRow inclusive, RowSize seats each.
type TheaterConfig struct {
	// FirstRow is the lowest row letter (default: "A")
	FirstRow string `mapstructure:"first_row"`
	// LastRow is the highest row letter (default: "T")
	LastRow string `mapstructure:"last_row"`
	// RowSize is the number of seats per row (default: 8)
	RowSize int `mapstructure:"row_size"`
}

// StateConfig controls where reservation state is persisted
type StateConfig struct {
	// Path is the reservation state file (default: "reservations.txt" in the working directory)
	Path string `mapstructure:"path"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Level is the minimum level written (DEBUG, INFO, WARN, ERROR)
	Level string `mapstructure:"level"`
	// Dir is the directory holding debug.log; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with all default values set
func Default() *Config {
	return &Config{
		Theater: TheaterConfig{
			FirstRow: "A",
			LastRow:  "T",
			RowSize:  8,
		},
		State: StateConfig{
			Path: store.DefaultStatePath,
		},
		Logging: LoggingConfig{
			// WARN keeps the CLI quiet on stderr while still surfacing
			// persistence problems; point dir at a directory to capture
			// the full INFO/DEBUG trail in debug.log instead.
			Level: logging.LevelWarn,
			Dir:   "",
		},
	}
}

// Layout converts the theater section into a ledger layout.
// Invalid values (empty or multi-character rows, reversed range,
// non-positive row size) fall back to the default layout.
func (c *Config) Layout() ledger.Layout {
	if len(c.Theater.FirstRow) != 1 || len(c.Theater.LastRow) != 1 {
		return ledger.DefaultLayout
	}
	la := ledger.Layout{
		FirstRow: c.Theater.FirstRow[0],
		LastRow:  c.Theater.LastRow[0],
		RowSize:  c.Theater.RowSize,
	}
	if la.FirstRow > la.LastRow || la.RowSize < 1 {
		return ledger.DefaultLayout
	}
	return la
}

// SetDefaults registers all default values with viper.
// Must be called before viper.ReadInConfig.
func SetDefaults() {
	defaults := Default()

	// Theater defaults
	viper.SetDefault("theater.first_row", defaults.Theater.FirstRow)
	viper.SetDefault("theater.last_row", defaults.Theater.LastRow)
	viper.SetDefault("theater.row_size", defaults.Theater.RowSize)

	// State defaults
	viper.SetDefault("state.path", defaults.State.Path)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the directory where the config file lives
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "usher")
	}
	// Fall back to ~/.config/usher
	home, err := os.UserHomeDir()
	if err != nil {
		return ".usher"
	}
	return filepath.Join(home, ".config", "usher")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// WriteDefault creates a config file at ConfigFile() with every option
// present and commented defaults. Fails if the file already exists.
func WriteDefault() (string, error) {
	path := ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := Default()
	content := fmt.Sprintf(`# usher configuration
# Values shown are the defaults.

theater:
  first_row: %q
  last_row: %q
  row_size: %d

state:
  # Reservation state file, relative paths resolve against the working directory.
  path: %q

logging:
  # DEBUG, INFO, WARN or ERROR
  level: %q
  # Directory for debug.log; empty logs to stderr.
  dir: %q
`,
		defaults.Theater.FirstRow,
		defaults.Theater.LastRow,
		defaults.Theater.RowSize,
		defaults.State.Path,
		defaults.Logging.Level,
		defaults.Logging.Dir,
	)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
