package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// ClickHouseConfig holds ClickHouse connection settings.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ClickHouseDB records parse runs for analytics.
type ClickHouseDB struct {
	conn driver.Conn
}

// OpenClickHouse opens a connection to ClickHouse.
func OpenClickHouse(ctx context.Context, cfg ClickHouseConfig) (*ClickHouseDB, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:     10 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}

	// Test the connection.
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	return &ClickHouseDB{conn: conn}, nil
}

// Close closes the ClickHouse connection.
func (d *ClickHouseDB) Close() error {
	return d.conn.Close()
}

// CreateSchema creates the ClickHouse tables.
func (d *ClickHouseDB) CreateSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS parse_runs (
			run_id             UUID,
			received_at        DateTime64(3),
			source             LowCardinality(String),
			total_blocks       UInt32,
			accepted_blocks    UInt32,
			rejected_blocks    UInt32,
			notam_count        UInt32,
			warning_count      UInt32,
			rejection_reasons  Map(String, UInt32)
		)
		ENGINE = MergeTree()
		PARTITION BY toYYYYMM(received_at)
		ORDER BY (received_at, run_id)`,

		`CREATE TABLE IF NOT EXISTS notam_events (
			run_id        UUID,
			received_at   DateTime64(3),
			notam_id      String,
			q_code        LowCardinality(String),
			location      LowCardinality(String),
			grp           LowCardinality(String),
			valid_from    Nullable(DateTime),
			valid_to      Nullable(DateTime),
			is_permanent  Bool,
			warning_count UInt32
		)
		ENGINE = MergeTree()
		PARTITION BY toYYYYMM(received_at)
		ORDER BY (grp, location, received_at)`,
	}

	for _, q := range queries {
		if err := d.conn.Exec(ctx, q); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// InsertRun records one parsed briefing: a parse_runs row plus one
// notam_events row per NOTAM.
func (d *ClickHouseDB) InsertRun(ctx context.Context, b Briefing) error {
	reasons := make(map[string]uint32, len(b.ValidationStats.RejectionReasons))
	for k, v := range b.ValidationStats.RejectionReasons {
		reasons[k] = uint32(v)
	}

	err := d.conn.Exec(ctx, `
		INSERT INTO parse_runs (run_id, received_at, source, total_blocks, accepted_blocks, rejected_blocks, notam_count, warning_count, rejection_reasons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.ReceivedAt, b.Source,
		uint32(b.ValidationStats.TotalBlocks), uint32(b.ValidationStats.AcceptedBlocks), uint32(b.ValidationStats.RejectedBlocks),
		uint32(len(b.Notams)), uint32(len(b.Warnings)), reasons)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if len(b.Notams) == 0 {
		return nil
	}

	batch, err := d.conn.PrepareBatch(ctx, `
		INSERT INTO notam_events (run_id, received_at, notam_id, q_code, location, grp, valid_from, valid_to, is_permanent, warning_count)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, n := range b.Notams {
		err := batch.Append(b.ID, b.ReceivedAt, n.NotamID, n.QCode, n.Location(), string(n.Group),
			n.ValidFrom, n.ValidTo, n.IsPermanent, uint32(len(n.Warnings)))
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// RunStats aggregates recorded parse runs.
type RunStats struct {
	TotalRuns        uint64            `json:"totalRuns"`
	TotalNotams      uint64            `json:"totalNotams"`
	ByGroup          map[string]uint64 `json:"byGroup"`
	RejectionReasons map[string]uint64 `json:"rejectionReasons"`
}

// GetStats returns totals, NOTAM counts per group and rejection counts per
// reason.
func (d *ClickHouseDB) GetStats(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{
		ByGroup:          make(map[string]uint64),
		RejectionReasons: make(map[string]uint64),
	}

	row := d.conn.QueryRow(ctx, "SELECT count() FROM parse_runs")
	if err := row.Scan(&stats.TotalRuns); err != nil {
		return nil, err
	}
	row = d.conn.QueryRow(ctx, "SELECT count() FROM notam_events")
	if err := row.Scan(&stats.TotalNotams); err != nil {
		return nil, err
	}

	if err := d.scanCounts(ctx, stats.ByGroup,
		"SELECT grp, count() FROM notam_events GROUP BY grp"); err != nil {
		return nil, fmt.Errorf("group stats: %w", err)
	}
	if err := d.scanCounts(ctx, stats.RejectionReasons, `
		SELECT reason, sum(n) FROM parse_runs
		ARRAY JOIN mapKeys(rejection_reasons) AS reason, mapValues(rejection_reasons) AS n
		GROUP BY reason`); err != nil {
		return nil, fmt.Errorf("rejection stats: %w", err)
	}

	return stats, nil
}

func (d *ClickHouseDB) scanCounts(ctx context.Context, into map[string]uint64, query string) error {
	rows, err := d.conn.Query(ctx, query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var count uint64
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}
	return rows.Err()
}
