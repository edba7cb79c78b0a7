package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want 10s", cfg.ReadTimeout)
	}
	if cfg.NoCache || cfg.Workers != 0 || cfg.Catalog != "" {
		t.Errorf("unexpected defaults: %s", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SUPERTILE_CATALOG":      "/etc/kinds.toml",
		"SUPERTILE_LOG_LEVEL":    "debug",
		"SUPERTILE_ADDR":         "127.0.0.1:9000",
		"SUPERTILE_READ_TIMEOUT": "2s",
		"SUPERTILE_NO_CACHE":     "true",
		"SUPERTILE_WORKERS":      "8",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Catalog != "/etc/kinds.toml" || cfg.LogLevel != "debug" || cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("overrides not applied: %s", cfg)
	}
	if cfg.ReadTimeout != 2*time.Second || !cfg.NoCache || cfg.Workers != 8 {
		t.Errorf("overrides not applied: %s", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"SUPERTILE_LOG_LEVEL": "loud"}, "SUPERTILE_LOG_LEVEL"},
		{"timeout", map[string]string{"SUPERTILE_READ_TIMEOUT": "0s"}, "SUPERTILE_READ_TIMEOUT"},
		{"workers", map[string]string{"SUPERTILE_WORKERS": "-1"}, "SUPERTILE_WORKERS"},
		{"unparsable", map[string]string{"SUPERTILE_WORKERS": "many"}, "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCatalogPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{ConfigDir: dir}
	if got := cfg.CatalogPath(); got != "" {
		t.Errorf("CatalogPath without file = %q, want empty", got)
	}

	path := filepath.Join(dir, "kinds.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := cfg.CatalogPath(); got != path {
		t.Errorf("CatalogPath = %q, want %q", got, path)
	}

	cfg.Catalog = "/explicit.toml"
	if got := cfg.CatalogPath(); got != "/explicit.toml" {
		t.Errorf("explicit catalog ignored: %q", got)
	}
}

func TestUserDirs(t *testing.T) {
	cfg := &Config{ConfigDir: "/cfg", CacheDir: "/cache"}
	if d, _ := cfg.UserConfigDir(); d != "/cfg" {
		t.Errorf("UserConfigDir = %q", d)
	}
	if d, _ := cfg.UserCacheDir(); d != "/cache" {
		t.Errorf("UserCacheDir = %q", d)
	}
}
