// Package config loads notam_parser settings from a YAML file, an optional
// .env file and NOTAM_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"notam_parser/internal/notam"
	"notam_parser/internal/storage"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	DefaultRetentionDays = 90
)

// Config models notam_parser.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  storage.Config `yaml:"storage"`
	NATS     NATSConfig     `yaml:"nats"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	AuthEnabled bool     `yaml:"auth_enabled"`
	APIKeys     []string `yaml:"api_keys"`
}

// NATSConfig holds the ingest worker's subjects.
type NATSConfig struct {
	URL           string `yaml:"url"`
	RawSubject    string `yaml:"raw_subject"`
	ParsedSubject string `yaml:"parsed_subject"`
	Queue         string `yaml:"queue"`
}

// PipelineConfig holds defaults applied around the parsing pipeline.
type PipelineConfig struct {
	DefaultWindow  string `yaml:"default_window"`
	IncludeExpired bool   `yaml:"include_expired"`
	RetentionDays  int    `yaml:"retention_days"`
}

// Window returns the configured default window.
func (p PipelineConfig) Window() (notam.Window, error) {
	return notam.ParseWindow(p.DefaultWindow)
}

// Retention is how long stored briefings are kept.
func (p PipelineConfig) Retention() time.Duration {
	return time.Duration(p.RetentionDays) * 24 * time.Hour
}

// Default returns local development settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8082},
		Storage: storage.Config{
			Backend:    BackendSQLite,
			SQLitePath: "notams.db",
			Postgres: storage.PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "notam",
				User:     "notam",
				Password: "notam",
			},
			ClickHouse: storage.ClickHouseConfig{
				Host:     "localhost",
				Port:     9000,
				Database: "notam",
				User:     "default",
			},
		},
		NATS: NATSConfig{
			URL:           "nats://127.0.0.1:4222",
			RawSubject:    "notam.briefings.raw",
			ParsedSubject: "notam.briefings.parsed",
			Queue:         "notam-parsers",
		},
		Pipeline: PipelineConfig{
			DefaultWindow: string(notam.Window24h),
			RetentionDays: DefaultRetentionDays,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), .env and the environment, then validates it.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config %s not found", path)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type override struct {
	key   string
	apply func(c *Config, v string) error
}

func setString(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

func setInt(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func setBool(dst func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst(c) = b
		return nil
	}
}

var overrides = []override{
	{"NOTAM_PORT", setInt(func(c *Config) *int { return &c.Server.Port })},
	{"NOTAM_AUTH", setBool(func(c *Config) *bool { return &c.Server.AuthEnabled })},
	{"NOTAM_API_KEYS", func(c *Config, v string) error {
		c.Server.APIKeys = splitList(v)
		return nil
	}},
	{"NOTAM_STORAGE_BACKEND", setString(func(c *Config) *string { return &c.Storage.Backend })},
	{"NOTAM_SQLITE_PATH", setString(func(c *Config) *string { return &c.Storage.SQLitePath })},
	{"NOTAM_POSTGRES_HOST", setString(func(c *Config) *string { return &c.Storage.Postgres.Host })},
	{"NOTAM_POSTGRES_PORT", setInt(func(c *Config) *int { return &c.Storage.Postgres.Port })},
	{"NOTAM_POSTGRES_DATABASE", setString(func(c *Config) *string { return &c.Storage.Postgres.Database })},
	{"NOTAM_POSTGRES_USER", setString(func(c *Config) *string { return &c.Storage.Postgres.User })},
	{"NOTAM_POSTGRES_PASSWORD", setString(func(c *Config) *string { return &c.Storage.Postgres.Password })},
	{"NOTAM_ANALYTICS", setBool(func(c *Config) *bool { return &c.Storage.Analytics })},
	{"NOTAM_CLICKHOUSE_HOST", setString(func(c *Config) *string { return &c.Storage.ClickHouse.Host })},
	{"NOTAM_CLICKHOUSE_PORT", setInt(func(c *Config) *int { return &c.Storage.ClickHouse.Port })},
	{"NOTAM_CLICKHOUSE_DATABASE", setString(func(c *Config) *string { return &c.Storage.ClickHouse.Database })},
	{"NOTAM_CLICKHOUSE_USER", setString(func(c *Config) *string { return &c.Storage.ClickHouse.User })},
	{"NOTAM_CLICKHOUSE_PASSWORD", setString(func(c *Config) *string { return &c.Storage.ClickHouse.Password })},
	{"NOTAM_NATS_URL", setString(func(c *Config) *string { return &c.NATS.URL })},
	{"NOTAM_NATS_RAW_SUBJECT", setString(func(c *Config) *string { return &c.NATS.RawSubject })},
	{"NOTAM_NATS_PARSED_SUBJECT", setString(func(c *Config) *string { return &c.NATS.ParsedSubject })},
	{"NOTAM_NATS_QUEUE", setString(func(c *Config) *string { return &c.NATS.Queue })},
	{"NOTAM_WINDOW", setString(func(c *Config) *string { return &c.Pipeline.DefaultWindow })},
	{"NOTAM_INCLUDE_EXPIRED", setBool(func(c *Config) *bool { return &c.Pipeline.IncludeExpired })},
	{"NOTAM_RETENTION_DAYS", setInt(func(c *Config) *int { return &c.Pipeline.RetentionDays })},
}

func (c *Config) applyEnv() error {
	for _, o := range overrides {
		v, ok := os.LookupEnv(o.key)
		if !ok || v == "" {
			continue
		}
		if err := o.apply(c, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks the settings that every command depends on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.AuthEnabled && len(c.Server.APIKeys) == 0 {
		return fmt.Errorf("server.api_keys is required when auth is enabled")
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	case BackendPostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.Database == "" {
			return fmt.Errorf("storage.postgres host and database are required")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendSQLite, BackendPostgres, c.Storage.Backend)
	}
	if _, err := c.Pipeline.Window(); err != nil {
		return fmt.Errorf("pipeline.default_window: %w", err)
	}
	if c.Pipeline.RetentionDays <= 0 {
		return fmt.Errorf("pipeline.retention_days must be positive")
	}
	if c.NATS.RawSubject == "" || c.NATS.ParsedSubject == "" {
		return fmt.Errorf("nats subjects are required")
	}
	return nil
}
