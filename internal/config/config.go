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

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// Config holds the application configuration.
type Config struct {
	Hours   HoursConfig   `toml:"hours"`
	Display DisplayConfig `toml:"display"`
	Share   ShareConfig   `toml:"share"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// HoursConfig holds the business-hours window used for overlap.
type HoursConfig struct {
	BusinessStart int `toml:"business_start"` // hour of day, inclusive
	BusinessEnd   int `toml:"business_end"`   // hour of day, exclusive
	MinOverlap    int `toml:"min_overlap"`    // cities that must overlap for a window
	MaxWindows    int `toml:"max_windows"`    // windows suggested
}

// DisplayConfig holds formatting preferences.
type DisplayConfig struct {
	Use24h       bool   `toml:"use_24h"`
	HomeTimezone string `toml:"home_timezone"` // e.g., "Europe/Madrid" (optional)
}

// ShareConfig holds share-link settings.
type ShareConfig struct {
	BaseURL string `toml:"base_url"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Hours: HoursConfig{
			BusinessStart: overlap.BusinessHours.Start,
			BusinessEnd:   overlap.BusinessHours.End,
			MinOverlap:    overlap.DefaultFinder.MinOverlap,
			MaxWindows:    overlap.DefaultFinder.Limit,
		},
		Display: DisplayConfig{
			Use24h: false,
		},
		Share: ShareConfig{
			BaseURL: "https://timesynx.app",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timesynx.db"
	}
	return filepath.Join(home, ".local", "share", "timesynx", "timesynx.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timesynx", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

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
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"TIMESYNX_BUSINESS_START", &cfg.Hours.BusinessStart},
		{"TIMESYNX_BUSINESS_END", &cfg.Hours.BusinessEnd},
		{"TIMESYNX_MIN_OVERLAP", &cfg.Hours.MinOverlap},
		{"TIMESYNX_MAX_WINDOWS", &cfg.Hours.MaxWindows},
	}
	for _, o := range ints {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", o.key, err)
		}
		*o.dst = n
	}

	if v := os.Getenv("TIMESYNX_USE_24H"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing TIMESYNX_USE_24H: %w", err)
		}
		cfg.Display.Use24h = b
	}
	if v := os.Getenv("TIMESYNX_HOME_TIMEZONE"); v != "" {
		cfg.Display.HomeTimezone = v
	}
	if v := os.Getenv("TIMESYNX_SHARE_BASE_URL"); v != "" {
		cfg.Share.BaseURL = v
	}
	if v := os.Getenv("TIMESYNX_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TIMESYNX_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
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

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	h := c.Hours
	if h.BusinessStart < 0 || h.BusinessStart > 23 {
		return fmt.Errorf("business_start must be between 0 and 23, got %d", h.BusinessStart)
	}
	if h.BusinessEnd < 1 || h.BusinessEnd > 24 {
		return fmt.Errorf("business_end must be between 1 and 24, got %d", h.BusinessEnd)
	}
	if h.BusinessStart >= h.BusinessEnd {
		return errors.New("business_start must be before business_end")
	}
	if h.MinOverlap < 1 {
		return fmt.Errorf("min_overlap must be at least 1, got %d", h.MinOverlap)
	}
	if h.MaxWindows < 1 {
		return fmt.Errorf("max_windows must be at least 1, got %d", h.MaxWindows)
	}

	if tz := c.Display.HomeTimezone; tz != "" && !tzfmt.Valid(tz) {
		return fmt.Errorf("invalid home_timezone: %s", tz)
	}
	if c.Share.BaseURL == "" {
		return errors.New("share base_url must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.UI.Theme != "" && !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// Finder returns the overlap finder for the configured hours.
func (c *Config) Finder() overlap.Finder {
	return overlap.Finder{
		Hours:      overlap.Hours{Start: c.Hours.BusinessStart, End: c.Hours.BusinessEnd},
		MinOverlap: c.Hours.MinOverlap,
		Limit:      c.Hours.MaxWindows,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
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
