package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"notam_parser/internal/grouping"
	"notam_parser/internal/notam"
	"notam_parser/internal/pipeline"
	"notam_parser/internal/source"
	"notam_parser/internal/storage"
	"notam_parser/internal/textnorm"
	"notam_parser/internal/timefilter"
)

// ParseRequest is the body of POST /briefings/parse.
type ParseRequest struct {
	Text     string `json:"text"`
	HTML     bool   `json:"html,omitempty"`     // Text is an HTML page.
	Document *bool  `json:"document,omitempty"` // Run section detection. Default true.
	Source   string `json:"source,omitempty"`
	Now      string `json:"now,omitempty"` // RFC3339. Defaults to server time.

	// When Window is set the response also carries the filtered view.
	Window         string `json:"window,omitempty"`
	IncludeExpired bool   `json:"includeExpired,omitempty"`

	Store bool `json:"store,omitempty"`
}

// ParseResponse is the pipeline result, optionally with the stored briefing
// ID and the time-filtered view.
type ParseResponse struct {
	pipeline.Result
	BriefingID *uuid.UUID          `json:"briefingId,omitempty"`
	Filtered   []timefilter.Result `json:"filtered,omitempty"`
}

// FilterRequest is the body of POST /briefings/filter.
type FilterRequest struct {
	Notams         []notam.Notam `json:"notams"`
	Window         string        `json:"window"`
	IncludeExpired bool          `json:"includeExpired"`
	Now            string        `json:"now,omitempty"`
}

// GroupRequest is the body of POST /briefings/group.
type GroupRequest struct {
	Notams []notam.Notam `json:"notams"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"time":    s.now().UTC().Format(time.RFC3339),
		"storage": s.store != nil,
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

func (s *Server) resolveNow(raw string) (time.Time, error) {
	if raw == "" {
		return s.now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("now must be RFC3339: %w", err)
	}
	return t.UTC(), nil
}

func (s *Server) resolveWindow(raw string) (notam.Window, error) {
	if raw == "" {
		return s.defaultWindow, nil
	}
	return notam.ParseWindow(raw)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decode(w, r, &req) {
		return
	}

	now, err := s.resolveNow(req.Now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var window notam.Window
	if req.Window != "" {
		if window, err = notam.ParseWindow(req.Window); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Store && s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Storage not configured")
		return
	}

	text := textnorm.Clean(req.Text)
	if req.HTML {
		if text, err = source.FromHTML(strings.NewReader(req.Text)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var resp ParseResponse
	if req.Document == nil || *req.Document {
		resp.Result = s.parser.ParseDocument(text, now)
	} else {
		resp.Result = s.parser.ParseText(text, now)
	}

	if window != "" {
		resp.Filtered = timefilter.Filter(resp.Notams, window, now,
			timefilter.Options{IncludeExpired: req.IncludeExpired})
	}

	if req.Store {
		b := storage.NewBriefing(req.Source, text, resp.Result, s.now())
		if err := s.store.StoreBriefing(r.Context(), b); err != nil {
			log.Printf("Store briefing failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to store briefing")
			return
		}
		resp.BriefingID = &b.ID
		if s.analytics != nil {
			if err := s.analytics.InsertRun(r.Context(), b); err != nil {
				log.Printf("Record parse run %s failed: %v", b.ID, err)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if !decode(w, r, &req) {
		return
	}

	now, err := s.resolveNow(req.Now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	window, err := s.resolveWindow(req.Window)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := timefilter.Filter(req.Notams, window, now, timefilter.Options{IncludeExpired: req.IncludeExpired})
	writeJSON(w, http.StatusOK, map[string]any{
		"window":  window,
		"results": results,
	})
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !decode(w, r, &req) {
		return
	}

	g := grouping.ByLocationAndCategory(req.Notams)
	writeJSON(w, http.StatusOK, map[string]any{
		"locations": g.Locations(),
		"sections":  g.Sections(),
		"count":     g.Count(),
	})
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Storage not configured")
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}

func (s *Server) handleListBriefings(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.store.ListBriefings(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"briefings": list})
}

func (s *Server) handleGetBriefing(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	b, err := s.store.GetBriefing(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "Briefing not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hits, err := s.store.Search(r.Context(), q, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "hits": hits})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.analytics == nil {
		writeError(w, http.StatusServiceUnavailable, "Analytics not configured")
		return
	}
	stats, err := s.analytics.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// CleanupResponse reports what a cleanup run removed, or would remove when
// dry_run is set.
type CleanupResponse struct {
	Cutoff  time.Time `json:"cutoff"`
	DryRun  bool      `json:"dryRun"`
	Expired int64     `json:"expired"`
	Deleted int64     `json:"deleted"`
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	retention := s.retention
	days, err := queryInt(r, "days", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if days > 0 {
		retention = time.Duration(days) * 24 * time.Hour
	}

	resp := CleanupResponse{
		Cutoff: s.now().UTC().Add(-retention),
		DryRun: r.URL.Query().Get("dry_run") == "true",
	}

	resp.Expired, err = s.store.CountExpiredBriefings(r.Context(), resp.Cutoff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !resp.DryRun {
		resp.Deleted, err = s.store.DeleteExpiredBriefings(r.Context(), resp.Cutoff)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		log.Printf("Cleanup removed %d briefings received before %s", resp.Deleted, resp.Cutoff.Format(time.RFC3339))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions.

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
