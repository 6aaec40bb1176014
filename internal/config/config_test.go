package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	// Unset any env vars that would interfere
	envVars := []string{
		"OPENSCREENER_API_PORT", "OPENSCREENER_API_HOST",
		"OPENSCREENER_SCREENER_WORKERS", "OPENSCREENER_SCREENER_RATE_LIMIT",
		"OPENSCREENER_SCREENER_FILTER_CACHE_TTL",
		"OPENSCREENER_LOGGING_LEVEL", "OPENSCREENER_LOGGING_FORMAT",
	}
	for _, e := range envVars {
		os.Unsetenv(e)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// API defaults
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins: got %v, want [*]", cfg.API.CORSOrigins)
	}

	// Screener defaults
	if cfg.Screener.Workers != 4 {
		t.Errorf("Screener.Workers: got %d, want 4", cfg.Screener.Workers)
	}
	if cfg.Screener.RateLimit != 5 {
		t.Errorf("Screener.RateLimit: got %d, want 5", cfg.Screener.RateLimit)
	}
	if cfg.Screener.FilterCacheTTL != 3600 {
		t.Errorf("Screener.FilterCacheTTL: got %d, want 3600", cfg.Screener.FilterCacheTTL)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "console")
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test_config.yaml")
	content := []byte(`
api:
  host: "127.0.0.1"
  port: 9090
  cors_origins:
    - "https://example.com"
screener:
  workers: 8
  rate_limit: 10
  filter_cache_ttl: 600
logging:
  level: "debug"
  format: "json"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host: got %q", cfg.API.Host)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://example.com" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}
	if cfg.Screener.Workers != 8 {
		t.Errorf("Screener.Workers: got %d, want 8", cfg.Screener.Workers)
	}
	if cfg.Screener.RateLimit != 10 {
		t.Errorf("Screener.RateLimit: got %d, want 10", cfg.Screener.RateLimit)
	}
	if cfg.Screener.FilterCacheTTL != 600 {
		t.Errorf("Screener.FilterCacheTTL: got %d, want 600", cfg.Screener.FilterCacheTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values missing from the file keep their defaults.
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "partial.yaml")
	content := []byte("api:\n  port: 3000\n")
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.API.Port != 3000 {
		t.Errorf("API.Port: got %d, want 3000", cfg.API.Port)
	}
	if cfg.Screener.Workers != 4 {
		t.Errorf("Screener.Workers should default to 4, got %d", cfg.Screener.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level should default to info, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

// ── Environment overrides ──

func TestEnvOverridesDefaults(t *testing.T) {
	os.Setenv("OPENSCREENER_API_PORT", "4242")
	os.Setenv("OPENSCREENER_LOGGING_LEVEL", "warn")
	defer func() {
		os.Unsetenv("OPENSCREENER_API_PORT")
		os.Unsetenv("OPENSCREENER_LOGGING_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Port != 4242 {
		t.Errorf("API.Port: got %d, want 4242", cfg.API.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("screener:\n  workers: 2\n"), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	os.Setenv("OPENSCREENER_SCREENER_WORKERS", "16")
	defer os.Unsetenv("OPENSCREENER_SCREENER_WORKERS")

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Screener.Workers != 16 {
		t.Errorf("Screener.Workers: got %d, want 16 (env should beat file)", cfg.Screener.Workers)
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	h := homeDir()
	if h == "" {
		t.Error("homeDir() should not return empty string")
	}
}
