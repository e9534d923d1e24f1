package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"notam_parser/internal/notam"
)

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// PostgresDB wraps a PostgreSQL connection pool for briefing storage.
type PostgresDB struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a connection pool to PostgreSQL.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresDB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// Test the connection.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

// Close closes the PostgreSQL connection pool.
func (d *PostgresDB) Close() {
	d.pool.Close()
}

// CreateSchema creates the PostgreSQL tables.
func (d *PostgresDB) CreateSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS briefings (
		id                UUID PRIMARY KEY,
		source            TEXT NOT NULL DEFAULT '',
		received_at       TIMESTAMPTZ NOT NULL,
		raw_text          TEXT NOT NULL DEFAULT '',
		warnings          JSONB NOT NULL DEFAULT '[]',
		validation_stats  JSONB NOT NULL DEFAULT '{}'
	);

	ALTER TABLE briefings ADD COLUMN IF NOT EXISTS raw_text TEXT NOT NULL DEFAULT '';

	CREATE INDEX IF NOT EXISTS idx_briefings_received_at ON briefings(received_at);

	CREATE TABLE IF NOT EXISTS notams (
		briefing_id   UUID NOT NULL REFERENCES briefings(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		notam_id      TEXT NOT NULL,
		q_code        TEXT,
		location      TEXT NOT NULL,
		grp           TEXT NOT NULL,
		valid_from    TIMESTAMPTZ,
		valid_to      TIMESTAMPTZ,
		is_permanent  BOOLEAN NOT NULL DEFAULT FALSE,
		raw_text      TEXT NOT NULL,
		data          JSONB NOT NULL,
		PRIMARY KEY (briefing_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_notams_location ON notams(location);
	CREATE INDEX IF NOT EXISTS idx_notams_group ON notams(grp);
	CREATE INDEX IF NOT EXISTS idx_notams_valid_to ON notams(valid_to);
	`

	_, err := d.pool.Exec(ctx, schema)
	return err
}

// StoreBriefing writes a briefing and its NOTAMs in one transaction.
func (d *PostgresDB) StoreBriefing(ctx context.Context, b Briefing) error {
	warnings, err := json.Marshal(b.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings: %w", err)
	}
	stats, err := json.Marshal(b.ValidationStats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO briefings (id, source, received_at, raw_text, warnings, validation_stats)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID.String(), b.Source, b.ReceivedAt, b.RawText, warnings, stats)
	if err != nil {
		return fmt.Errorf("insert briefing: %w", err)
	}

	batch := &pgx.Batch{}
	for i, n := range b.Notams {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("marshal notam: %w", err)
		}
		batch.Queue(`
			INSERT INTO notams (briefing_id, seq, notam_id, q_code, location, grp, valid_from, valid_to, is_permanent, raw_text, data)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, b.ID.String(), i, n.NotamID, n.QCode, n.Location(), string(n.Group), n.ValidFrom, n.ValidTo, n.IsPermanent, n.RawText, data)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert notams: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetBriefing retrieves a briefing by ID. It returns nil when none exists.
func (d *PostgresDB) GetBriefing(ctx context.Context, id uuid.UUID) (*Briefing, error) {
	var b Briefing
	var warnings, stats []byte
	err := d.pool.QueryRow(ctx, `
		SELECT source, received_at, raw_text, warnings, validation_stats FROM briefings WHERE id = $1
	`, id.String()).Scan(&b.Source, &b.ReceivedAt, &b.RawText, &warnings, &stats)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get briefing: %w", err)
	}

	b.ID = id
	b.ReceivedAt = b.ReceivedAt.UTC()
	if err := json.Unmarshal(warnings, &b.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings: %w", err)
	}
	if err := json.Unmarshal(stats, &b.ValidationStats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	rows, err := d.pool.Query(ctx, `SELECT data FROM notams WHERE briefing_id = $1 ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("query notams: %w", err)
	}
	defer rows.Close()

	b.Notams = []notam.Notam{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan notam: %w", err)
		}
		var n notam.Notam
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("decode notam: %w", err)
		}
		b.Notams = append(b.Notams, n)
	}
	return &b, rows.Err()
}

// ListBriefings returns briefings newest first.
func (d *PostgresDB) ListBriefings(ctx context.Context, limit, offset int) ([]BriefingSummary, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT b.id::text, b.source, b.received_at,
			COALESCE((b.validation_stats->>'rejectedBlocks')::int, 0),
			(SELECT COUNT(*) FROM notams n WHERE n.briefing_id = b.id)
		FROM briefings b
		ORDER BY b.received_at DESC
		LIMIT $1 OFFSET $2
	`, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	defer rows.Close()

	out := []BriefingSummary{}
	for rows.Next() {
		var s BriefingSummary
		var id string
		var count int64
		if err := rows.Scan(&id, &s.Source, &s.ReceivedAt, &s.RejectedBlocks, &count); err != nil {
			return nil, fmt.Errorf("scan briefing: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("briefing id %q: %w", id, err)
		}
		s.ReceivedAt = s.ReceivedAt.UTC()
		s.NotamCount = int(count)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Search returns stored NOTAMs whose text contains every query term.
func (d *PostgresDB) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	terms := searchTerms(query)
	if len(terms) == 0 {
		return []SearchHit{}, nil
	}
	patterns := make([]string, len(terms))
	for i, t := range terms {
		patterns[i] = likePattern(t)
	}

	rows, err := d.pool.Query(ctx, `
		SELECT n.briefing_id::text, n.data
		FROM notams n
		JOIN briefings b ON b.id = n.briefing_id
		WHERE upper(n.raw_text) LIKE ALL($1)
		ORDER BY b.received_at DESC, n.seq
		LIMIT $2
	`, patterns, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search notams: %w", err)
	}
	defer rows.Close()

	hits := []SearchHit{}
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		var h SearchHit
		if h.BriefingID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("briefing id %q: %w", id, err)
		}
		if err := json.Unmarshal(data, &h.Notam); err != nil {
			return nil, fmt.Errorf("decode notam: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// CountExpiredBriefings counts briefings received before cutoff.
func (d *PostgresDB) CountExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM briefings WHERE received_at < $1`, cutoff).Scan(&n)
	return n, err
}

// DeleteExpiredBriefings removes briefings received before cutoff. Their
// NOTAMs go with them through the foreign key cascade.
func (d *PostgresDB) DeleteExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.pool.Exec(ctx, `DELETE FROM briefings WHERE received_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete briefings: %w", err)
	}
	return tag.RowsAffected(), nil
}
