// Package config reads supertile settings from the environment.
//
// Every setting has a matching CLI flag; flags win over the environment.
//
//	SUPERTILE_CATALOG        user catalog file merged over the built-in kinds
//	SUPERTILE_LOG_LEVEL      debug, info, warn or error
//	SUPERTILE_ADDR           listen address of "supertile serve"
//	SUPERTILE_READ_TIMEOUT   request header timeout of the server
//	SUPERTILE_CONFIG_DIR     overrides the per-user config directory
//	SUPERTILE_CACHE_DIR      overrides the per-user cache directory
//	SUPERTILE_NO_CACHE       disables the table and image cache
//	SUPERTILE_WORKERS        concurrent layouts while building tables
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// AppName names the per-user directories.
const AppName = "supertile"

// Config holds all supertile settings.
type Config struct {
	Catalog     string        `env:"SUPERTILE_CATALOG"`
	LogLevel    string        `env:"SUPERTILE_LOG_LEVEL" envDefault:"info"`
	Addr        string        `env:"SUPERTILE_ADDR" envDefault:":8080"`
	ReadTimeout time.Duration `env:"SUPERTILE_READ_TIMEOUT" envDefault:"10s"`
	ConfigDir   string        `env:"SUPERTILE_CONFIG_DIR"`
	CacheDir    string        `env:"SUPERTILE_CACHE_DIR"`
	NoCache     bool          `env:"SUPERTILE_NO_CACHE" envDefault:"false"`
	Workers     int           `env:"SUPERTILE_WORKERS" envDefault:"0"`
}

// Load reads the process environment.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("SUPERTILE_LOG_LEVEL must be one of: debug, info, warn, error")
	}
	if c.Addr == "" {
		return fmt.Errorf("SUPERTILE_ADDR is required")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("SUPERTILE_READ_TIMEOUT must be positive")
	}
	if c.Workers < 0 {
		return fmt.Errorf("SUPERTILE_WORKERS must be non-negative")
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// UserConfigDir is SUPERTILE_CONFIG_DIR or the platform config directory
// joined with AppName.
func (c *Config) UserConfigDir() (string, error) {
	if c.ConfigDir != "" {
		return c.ConfigDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// UserCacheDir is SUPERTILE_CACHE_DIR or the platform cache directory
// joined with AppName.
func (c *Config) UserCacheDir() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// CatalogPath is the catalog file to load: SUPERTILE_CATALOG when set,
// otherwise kinds.toml in the config directory if it exists, otherwise "".
func (c *Config) CatalogPath() string {
	if c.Catalog != "" {
		return c.Catalog
	}
	dir, err := c.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "kinds.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// String returns a one-line summary.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Catalog=%q, LogLevel=%s, Addr=%s, ReadTimeout=%s, NoCache=%v, Workers=%d}",
		c.Catalog, c.LogLevel, c.Addr, c.ReadTimeout, c.NoCache, c.Workers)
}
