package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"notam_parser/internal/notam"
)

// Archive is a local SQLite store of parsed briefings with full-text search
// over NOTAM text.
type Archive struct {
	db *sql.DB
}

// OpenArchive opens or creates a SQLite archive at the given path.
func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent access.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createArchiveSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

func createArchiveSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS briefings (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		received_at TEXT NOT NULL,
		raw_text TEXT NOT NULL DEFAULT '',
		warnings TEXT NOT NULL DEFAULT '[]',
		validation_stats TEXT NOT NULL DEFAULT '{}'
	);

	CREATE INDEX IF NOT EXISTS idx_briefings_received_at ON briefings(received_at);

	CREATE TABLE IF NOT EXISTS notams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		briefing_id TEXT NOT NULL REFERENCES briefings(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		notam_id TEXT NOT NULL,
		q_code TEXT,
		location TEXT NOT NULL,
		grp TEXT NOT NULL,
		valid_from TEXT,
		valid_to TEXT,
		is_permanent INTEGER NOT NULL DEFAULT 0,
		raw_text TEXT NOT NULL,
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notams_briefing ON notams(briefing_id, seq);
	CREATE INDEX IF NOT EXISTS idx_notams_location ON notams(location);
	CREATE INDEX IF NOT EXISTS idx_notams_group ON notams(grp);

	-- FTS5 virtual table for full-text search on NOTAM text.
	CREATE VIRTUAL TABLE IF NOT EXISTS notams_fts USING fts5(
		raw_text,
		content='notams',
		content_rowid='id'
	);

	-- Triggers to keep FTS index in sync.
	CREATE TRIGGER IF NOT EXISTS notams_ai AFTER INSERT ON notams BEGIN
		INSERT INTO notams_fts(rowid, raw_text) VALUES (new.id, new.raw_text);
	END;

	CREATE TRIGGER IF NOT EXISTS notams_ad AFTER DELETE ON notams BEGIN
		INSERT INTO notams_fts(notams_fts, rowid, raw_text) VALUES('delete', old.id, old.raw_text);
	END;
	`

	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return addBriefingRawText(db)
}

// addBriefingRawText upgrades archives created before briefings kept their
// submitted text.
func addBriefingRawText(db *sql.DB) error {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('briefings') WHERE name = 'raw_text'`).Scan(&n)
	if err != nil {
		return fmt.Errorf("inspect briefings: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = db.Exec(`ALTER TABLE briefings ADD COLUMN raw_text TEXT NOT NULL DEFAULT ''`)
	return err
}

// Fixed width so that stored timestamps sort as text.
const receivedLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// StoreBriefing writes a briefing and its NOTAMs in one transaction.
func (a *Archive) StoreBriefing(ctx context.Context, b Briefing) error {
	warnings, err := json.Marshal(b.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings: %w", err)
	}
	stats, err := json.Marshal(b.ValidationStats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO briefings (id, source, received_at, raw_text, warnings, validation_stats)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID.String(), b.Source, b.ReceivedAt.UTC().Format(receivedLayout), b.RawText, string(warnings), string(stats))
	if err != nil {
		return fmt.Errorf("insert briefing: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notams (briefing_id, seq, notam_id, q_code, location, grp, valid_from, valid_to, is_permanent, raw_text, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare notam insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, n := range b.Notams {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("marshal notam: %w", err)
		}
		_, err = stmt.ExecContext(ctx, b.ID.String(), i, n.NotamID, n.QCode, n.Location(), string(n.Group),
			formatTime(n.ValidFrom), formatTime(n.ValidTo), n.IsPermanent, n.RawText, string(data))
		if err != nil {
			return fmt.Errorf("insert notam %s: %w", n.NotamID, err)
		}
	}

	return tx.Commit()
}

// GetBriefing retrieves a briefing by ID. It returns nil when none exists.
func (a *Archive) GetBriefing(ctx context.Context, id uuid.UUID) (*Briefing, error) {
	var b Briefing
	var receivedAt, warnings, stats string
	err := a.db.QueryRowContext(ctx, `
		SELECT source, received_at, raw_text, warnings, validation_stats FROM briefings WHERE id = ?
	`, id.String()).Scan(&b.Source, &receivedAt, &b.RawText, &warnings, &stats)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get briefing: %w", err)
	}

	b.ID = id
	b.ReceivedAt, _ = time.Parse(receivedLayout, receivedAt)
	if err := json.Unmarshal([]byte(warnings), &b.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings: %w", err)
	}
	if err := json.Unmarshal([]byte(stats), &b.ValidationStats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, `SELECT data FROM notams WHERE briefing_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("query notams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	b.Notams = []notam.Notam{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan notam: %w", err)
		}
		var n notam.Notam
		if err := json.Unmarshal([]byte(data), &n); err != nil {
			return nil, fmt.Errorf("decode notam: %w", err)
		}
		b.Notams = append(b.Notams, n)
	}
	return &b, rows.Err()
}

// ListBriefings returns briefings newest first.
func (a *Archive) ListBriefings(ctx context.Context, limit, offset int) ([]BriefingSummary, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT b.id, b.source, b.received_at, b.validation_stats,
			(SELECT COUNT(*) FROM notams n WHERE n.briefing_id = b.id)
		FROM briefings b
		ORDER BY b.received_at DESC
		LIMIT ? OFFSET ?
	`, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []BriefingSummary{}
	for rows.Next() {
		var s BriefingSummary
		var id, receivedAt, stats string
		if err := rows.Scan(&id, &s.Source, &receivedAt, &stats, &s.NotamCount); err != nil {
			return nil, fmt.Errorf("scan briefing: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("briefing id %q: %w", id, err)
		}
		s.ReceivedAt, _ = time.Parse(receivedLayout, receivedAt)
		var vs struct {
			RejectedBlocks int `json:"rejectedBlocks"`
		}
		_ = json.Unmarshal([]byte(stats), &vs)
		s.RejectedBlocks = vs.RejectedBlocks
		out = append(out, s)
	}
	return out, rows.Err()
}

// ftsQuery quotes every term so that NOTAM punctuation such as "01/19" is
// matched as a phrase rather than parsed as FTS5 syntax.
func ftsQuery(query string) string {
	terms := searchTerms(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// Search runs a full-text search over stored NOTAM text, best match first.
func (a *Archive) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	q := ftsQuery(query)
	if q == "" {
		return []SearchHit{}, nil
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT n.briefing_id, n.data
		FROM notams n
		JOIN notams_fts fts ON n.id = fts.rowid
		WHERE notams_fts MATCH ?
		ORDER BY fts.rank, n.id
		LIMIT ?
	`, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search notams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	hits := []SearchHit{}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		var h SearchHit
		if h.BriefingID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("briefing id %q: %w", id, err)
		}
		if err := json.Unmarshal([]byte(data), &h.Notam); err != nil {
			return nil, fmt.Errorf("decode notam: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// CountExpiredBriefings counts briefings received before cutoff.
func (a *Archive) CountExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM briefings WHERE received_at < ?`,
		cutoff.UTC().Format(receivedLayout)).Scan(&n)
	return n, err
}

// DeleteExpiredBriefings removes briefings received before cutoff, with
// their NOTAMs.
func (a *Archive) DeleteExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error) {
	ts := cutoff.UTC().Format(receivedLayout)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM notams WHERE briefing_id IN (SELECT id FROM briefings WHERE received_at < ?)
	`, ts); err != nil {
		return 0, fmt.Errorf("delete notams: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM briefings WHERE received_at < ?`, ts)
	if err != nil {
		return 0, fmt.Errorf("delete briefings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}
