package storage

import (
	"context"
	"fmt"
)

// Config holds connection settings for the briefing stores.
type Config struct {
	// Backend selects the briefing store: "sqlite" or "postgres".
	Backend    string           `yaml:"backend"`
	SQLitePath string           `yaml:"sqlite_path"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Analytics  bool             `yaml:"analytics"` // Record parse runs in ClickHouse.
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
}

// DB wraps the server-side stores.
type DB struct {
	PG *PostgresDB   // Briefings and NOTAMs.
	CH *ClickHouseDB // Parse run analytics. Nil when analytics are off.
}

// Open opens PostgreSQL and, when cfg.Analytics is set, ClickHouse.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	pg, err := OpenPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	if !cfg.Analytics {
		return &DB{PG: pg}, nil
	}

	ch, err := OpenClickHouse(ctx, cfg.ClickHouse)
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	return &DB{PG: pg, CH: ch}, nil
}

// Close closes both database connections.
func (d *DB) Close() error {
	if d.PG != nil {
		d.PG.Close()
	}
	if d.CH != nil {
		if err := d.CH.Close(); err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
	}
	return nil
}

// CreateSchemas creates the schemas in every open database.
func (d *DB) CreateSchemas(ctx context.Context) error {
	if err := d.PG.CreateSchema(ctx); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	if d.CH != nil {
		if err := d.CH.CreateSchema(ctx); err != nil {
			return fmt.Errorf("clickhouse schema: %w", err)
		}
	}
	return nil
}
