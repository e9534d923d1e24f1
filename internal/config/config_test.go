package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"notam_parser/internal/notam"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notam_parser.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Server.Port != 8082 {
		t.Errorf("Server.Port = %d, want 8082", cfg.Server.Port)
	}
	if got := cfg.Pipeline.Retention(); got != 90*24*time.Hour {
		t.Errorf("Retention() = %v, want 2160h", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  auth_enabled: true
  api_keys: [alpha, beta]
storage:
  backend: postgres
  postgres:
    host: db.internal
    database: briefings
pipeline:
  default_window: 12h
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if len(cfg.Server.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Server.APIKeys)
	}
	if cfg.Storage.Backend != BackendPostgres {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendPostgres)
	}
	if cfg.Storage.Postgres.Host != "db.internal" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Storage.Postgres.Host, "db.internal")
	}
	// Keys the file leaves out keep their defaults.
	if cfg.Storage.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want 5432", cfg.Storage.Postgres.Port)
	}
	if cfg.NATS.Queue != "notam-parsers" {
		t.Errorf("NATS.Queue = %q, want %q", cfg.NATS.Queue, "notam-parsers")
	}
	w, err := cfg.Pipeline.Window()
	if err != nil || w != notam.Window12h {
		t.Errorf("Window() = %q, %v, want 12h", w, err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOTAM_PORT", "7000")
	t.Setenv("NOTAM_API_KEYS", "one, two,,three")
	t.Setenv("NOTAM_WINDOW", "All")
	t.Setenv("NOTAM_NATS_URL", "nats://broker:4222")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
	}
	if len(cfg.Server.APIKeys) != 3 || cfg.Server.APIKeys[2] != "three" {
		t.Errorf("APIKeys = %q, want [one two three]", cfg.Server.APIKeys)
	}
	if cfg.Pipeline.DefaultWindow != "All" {
		t.Errorf("DefaultWindow = %q, want All", cfg.Pipeline.DefaultWindow)
	}
	if cfg.NATS.URL != "nats://broker:4222" {
		t.Errorf("NATS.URL = %q", cfg.NATS.URL)
	}
}

func TestEnvOverrideBadInt(t *testing.T) {
	t.Setenv("NOTAM_PORT", "eighty")
	if _, err := Load(""); err == nil {
		t.Error("Load() with NOTAM_PORT=eighty succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"auth without keys", func(c *Config) { c.Server.AuthEnabled = true }},
		{"backend", func(c *Config) { c.Storage.Backend = "mysql" }},
		{"sqlite path", func(c *Config) { c.Storage.SQLitePath = "" }},
		{"postgres host", func(c *Config) {
			c.Storage.Backend = BackendPostgres
			c.Storage.Postgres.Host = ""
		}},
		{"window", func(c *Config) { c.Pipeline.DefaultWindow = "48h" }},
		{"retention", func(c *Config) { c.Pipeline.RetentionDays = 0 }},
		{"subjects", func(c *Config) { c.NATS.RawSubject = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateWindowWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.DefaultWindow = "1d"
	if err := cfg.Validate(); !errors.Is(err, notam.ErrUnknownWindow) {
		t.Errorf("Validate() = %v, want ErrUnknownWindow", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load() of a missing file succeeded, want error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML succeeded, want error")
	}
}
