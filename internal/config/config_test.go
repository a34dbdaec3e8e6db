package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if got := cfg.Server.Address(); got != "0.0.0.0:3000" {
		t.Fatalf("unexpected default address %q", got)
	}
	if cfg.Captions.Language != "en" {
		t.Fatalf("unexpected default language %q", cfg.Captions.Language)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Server.Port != defaultPort || cfg.Captions.Backend != BackendYouTube {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "legenda.toml")
	content := `
[server]
host = " 127.0.0.1 "
port = 8081
allowed_origins = ["https://example.com", " "]

[captions]
backend = "YTDLP"
language = "EN"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Server.Address() != "127.0.0.1:8081" {
		t.Fatalf("unexpected address %q", cfg.Server.Address())
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://example.com" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Captions.Backend != BackendYtDlp {
		t.Fatalf("unexpected backend %q", cfg.Captions.Backend)
	}
	if cfg.Captions.Language != "en" {
		t.Fatalf("expected canonical language, got %q", cfg.Captions.Language)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Captions.YtDlpBinary != defaultYtDlpBinary {
		t.Fatalf("expected default yt-dlp binary, got %q", cfg.Captions.YtDlpBinary)
	}
}

func TestLoadEnvOverridesBinding(t *testing.T) {
	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "9090")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address() != "localhost:9090" {
		t.Fatalf("unexpected address %q", cfg.Server.Address())
	}
}

func TestLoadRejectsInvalidPortEnv(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "http")

	_, _, _, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err == nil || !strings.Contains(err.Error(), "PORT") {
		t.Fatalf("expected PORT error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"backend", func(c *Config) { c.Captions.Backend = "scraper" }, "captions.backend"},
		{"timeout", func(c *Config) { c.Captions.HTTPTimeoutSeconds = 0 }, "http_timeout_seconds"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "max_body_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNormalizeRejectsInvalidLanguage(t *testing.T) {
	cfg := Default()
	cfg.Captions.Language = "not a language!"
	if err := cfg.normalize(); err == nil {
		t.Fatal("expected invalid language error")
	}
}

func TestSampleConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize sample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
