// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	User     UserConfig     `toml:"user"`
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// UserConfig identifies the calendar owner.
type UserConfig struct {
	Handle string `toml:"handle"` // owner handle used for event visibility
}

// CalendarConfig holds layout and navigation settings.
type CalendarConfig struct {
	UnitsPerHour  float64 `toml:"units_per_hour"` // vertical layout units per hour
	MonthOverflow string  `toml:"month_overflow"` // "clamp" or "skip"
	DefaultView   string  `toml:"default_view"`   // "day", "week", "work-week", "month", "year"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		User: UserConfig{
			Handle: defaultHandle(),
		},
		Calendar: CalendarConfig{
			UnitsPerHour:  3,
			MonthOverflow: "clamp",
			DefaultView:   "week",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

func defaultHandle() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "me"
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planpal.db"
	}
	return filepath.Join(home, ".local", "share", "planpal", "planpal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "planpal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANPAL_HANDLE"); v != "" {
		cfg.User.Handle = v
	}
	if v := os.Getenv("PLANPAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PLANPAL_UNITS_PER_HOUR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Calendar.UnitsPerHour = f
		}
	}
	if v := os.Getenv("PLANPAL_MONTH_OVERFLOW"); v != "" {
		cfg.Calendar.MonthOverflow = v
	}
	if v := os.Getenv("PLANPAL_DEFAULT_VIEW"); v != "" {
		cfg.Calendar.DefaultView = v
	}
	if v := os.Getenv("PLANPAL_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.User.Handle == "" {
		return errors.New("user handle cannot be empty")
	}
	if c.Calendar.UnitsPerHour <= 0 {
		return errors.New("units_per_hour must be positive")
	}
	switch c.Calendar.MonthOverflow {
	case "clamp", "skip":
	default:
		return fmt.Errorf("month_overflow must be 'clamp' or 'skip', got %q", c.Calendar.MonthOverflow)
	}
	switch c.Calendar.DefaultView {
	case "day", "week", "work-week", "workweek", "month", "year":
	default:
		return fmt.Errorf("default_view %q is not a known view", c.Calendar.DefaultView)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path cannot be empty")
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("theme must be 'dark' or 'light', got %q", c.UI.Theme)
	}
	return nil
}
