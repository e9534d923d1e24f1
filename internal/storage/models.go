// Package storage persists parsed briefings: a local SQLite archive, a
// PostgreSQL briefing store and ClickHouse parse analytics.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"notam_parser/internal/notam"
	"notam_parser/internal/pipeline"
	"notam_parser/internal/validate"
)

// DefaultRetention is how long briefings are kept before cleanup removes them.
const DefaultRetention = 90 * 24 * time.Hour

// Briefing is one parsed submission and everything the pipeline produced.
type Briefing struct {
	ID              uuid.UUID      `json:"id"`
	Source          string         `json:"source"`
	ReceivedAt      time.Time      `json:"receivedAt"`
	RawText         string         `json:"rawText"` // Text as submitted to the parser.
	Notams          []notam.Notam  `json:"notams"`
	Warnings        []string       `json:"warnings"`
	ValidationStats validate.Stats `json:"validationStats"`
}

// NewBriefing wraps a pipeline result and the text it was parsed from with a
// fresh ID. rawText is kept even when no NOTAM was accepted.
func NewBriefing(source, rawText string, res pipeline.Result, receivedAt time.Time) Briefing {
	return Briefing{
		ID:              uuid.New(),
		Source:          source,
		ReceivedAt:      receivedAt.UTC(),
		RawText:         rawText,
		Notams:          res.Notams,
		Warnings:        res.Warnings,
		ValidationStats: res.ValidationStats,
	}
}

// BriefingSummary is a list entry for a stored briefing.
type BriefingSummary struct {
	ID             uuid.UUID `json:"id"`
	Source         string    `json:"source"`
	ReceivedAt     time.Time `json:"receivedAt"`
	NotamCount     int       `json:"notamCount"`
	RejectedBlocks int       `json:"rejectedBlocks"`
}

// SearchHit is a stored NOTAM matching a text search.
type SearchHit struct {
	BriefingID uuid.UUID   `json:"briefingId"`
	Notam      notam.Notam `json:"notam"`
}

// BriefingStore is implemented by both the SQLite archive and PostgreSQL.
type BriefingStore interface {
	StoreBriefing(ctx context.Context, b Briefing) error
	GetBriefing(ctx context.Context, id uuid.UUID) (*Briefing, error)
	ListBriefings(ctx context.Context, limit, offset int) ([]BriefingSummary, error)
	Search(ctx context.Context, query string, limit int) ([]SearchHit, error)
	CountExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteExpiredBriefings(ctx context.Context, cutoff time.Time) (int64, error)
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func searchTerms(query string) []string {
	return strings.Fields(strings.ToUpper(query))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches term anywhere in a LIKE expression, with the LIKE
// wildcards in term taken literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
