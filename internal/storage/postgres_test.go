package storage

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// setupTestPostgres creates a test database connection.
// Returns nil if no PostgreSQL connection is available.
func setupTestPostgres(t *testing.T) *PostgresDB {
	t.Helper()

	port, _ := strconv.Atoi(envOr("POSTGRES_PORT", "5432"))
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pg, err := OpenPostgres(ctx, PostgresConfig{
		Host:     envOr("POSTGRES_HOST", "localhost"),
		Port:     port,
		User:     envOr("POSTGRES_USER", "notam"),
		Password: envOr("POSTGRES_PASSWORD", "notam"),
		Database: envOr("POSTGRES_DB", "notam"),
	})
	if err != nil {
		return nil
	}

	// Ensure schema exists.
	if err := pg.CreateSchema(ctx); err != nil {
		pg.Close()
		return nil
	}

	t.Cleanup(pg.Close)
	return pg
}

func TestPostgresStoreAndGet(t *testing.T) {
	pg := setupTestPostgres(t)
	if pg == nil {
		t.Skip("No PostgreSQL connection available")
	}
	ctx := context.Background()

	b := testBriefing("pg-test", time.Now().UTC().Truncate(time.Millisecond))
	if err := pg.StoreBriefing(ctx, b); err != nil {
		t.Fatalf("StoreBriefing() error = %v", err)
	}
	t.Cleanup(func() {
		_, _ = pg.pool.Exec(context.Background(), "DELETE FROM briefings WHERE id = $1", b.ID.String())
	})

	got, err := pg.GetBriefing(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBriefing() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetBriefing() = nil")
	}
	if len(got.Notams) != len(b.Notams) {
		t.Fatalf("len(Notams) = %d, want %d", len(got.Notams), len(b.Notams))
	}
	if got.RawText != briefingText {
		t.Errorf("RawText = %q, want the submitted text", got.RawText)
	}
	if got.Notams[2].IsPermanent != true {
		t.Errorf("Notams[2].IsPermanent = false, want true")
	}

	hits, err := pg.Search(ctx, "twy clsd", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	found := false
	for _, h := range hits {
		if h.BriefingID == b.ID && h.Notam.NotamID == "D3201/25" {
			found = true
		}
	}
	if !found {
		t.Error("Search(\"twy clsd\") did not return D3201/25")
	}
}

func TestPostgresSearchLiteralWildcards(t *testing.T) {
	pg := setupTestPostgres(t)
	if pg == nil {
		t.Skip("No PostgreSQL connection available")
	}
	ctx := context.Background()

	b := testBriefing("pg-like", time.Now().UTC())
	if err := pg.StoreBriefing(ctx, b); err != nil {
		t.Fatalf("StoreBriefing() error = %v", err)
	}
	t.Cleanup(func() {
		_, _ = pg.pool.Exec(context.Background(), "DELETE FROM briefings WHERE id = $1", b.ID.String())
	})

	// "_" would match any single character if it were not escaped.
	for _, q := range []string{"RWY_01/19", "TWY%CLSD"} {
		hits, err := pg.Search(ctx, q, 10)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		for _, h := range hits {
			if h.BriefingID == b.ID {
				t.Errorf("Search(%q) matched %s", q, h.Notam.NotamID)
			}
		}
	}
}

func TestPostgresGetMissing(t *testing.T) {
	pg := setupTestPostgres(t)
	if pg == nil {
		t.Skip("No PostgreSQL connection available")
	}

	got, err := pg.GetBriefing(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetBriefing() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetBriefing() = %+v, want nil", got)
	}
}

func TestPostgresDeleteExpired(t *testing.T) {
	pg := setupTestPostgres(t)
	if pg == nil {
		t.Skip("No PostgreSQL connection available")
	}
	ctx := context.Background()

	// Far enough in the past that no other data shares the window.
	old := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	b := testBriefing("pg-expired", old)
	if err := pg.StoreBriefing(ctx, b); err != nil {
		t.Fatalf("StoreBriefing() error = %v", err)
	}

	cutoff := old.Add(time.Hour)
	n, err := pg.CountExpiredBriefings(ctx, cutoff)
	if err != nil {
		t.Fatalf("CountExpiredBriefings() error = %v", err)
	}
	if n < 1 {
		t.Errorf("CountExpiredBriefings() = %d, want >= 1", n)
	}

	deleted, err := pg.DeleteExpiredBriefings(ctx, cutoff)
	if err != nil {
		t.Fatalf("DeleteExpiredBriefings() error = %v", err)
	}
	if deleted < 1 {
		t.Errorf("DeleteExpiredBriefings() = %d, want >= 1", deleted)
	}
	if got, _ := pg.GetBriefing(ctx, b.ID); got != nil {
		t.Error("expired briefing still present")
	}
}
