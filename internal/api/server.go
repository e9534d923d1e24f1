// Package api provides the REST API for parsing, filtering and retrieving
// NOTAM briefings.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notam_parser/internal/notam"
	"notam_parser/internal/pipeline"
	"notam_parser/internal/storage"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 10 << 20

// Analytics records parse runs. Implemented by storage.ClickHouseDB.
type Analytics interface {
	InsertRun(ctx context.Context, b storage.Briefing) error
	GetStats(ctx context.Context) (*storage.RunStats, error)
}

// Config holds configuration for the API server.
type Config struct {
	Port          int
	AuthEnabled   bool
	APIKeys       []string // List of valid API keys.
	DefaultWindow notam.Window
	Retention     time.Duration
	Analytics     Analytics        // Optional.
	Now           func() time.Time // Defaults to time.Now.
}

// Server serves the briefing API.
type Server struct {
	parser        *pipeline.Parser
	store         storage.BriefingStore
	analytics     Analytics
	port          int
	authEnabled   bool
	apiKeys       map[string]bool // Simple API key auth (when enabled).
	defaultWindow notam.Window
	retention     time.Duration
	now           func() time.Time
}

// NewServer creates an API server. store may be nil, in which case the
// stateless endpoints still work and the rest answer 503.
func NewServer(store storage.BriefingStore, cfg Config) *Server {
	keys := make(map[string]bool)
	for _, k := range cfg.APIKeys {
		if k != "" {
			keys[k] = true
		}
	}

	s := &Server{
		parser:        pipeline.Default(),
		store:         store,
		analytics:     cfg.Analytics,
		port:          cfg.Port,
		authEnabled:   cfg.AuthEnabled,
		apiKeys:       keys,
		defaultWindow: cfg.DefaultWindow,
		retention:     cfg.Retention,
		now:           cfg.Now,
	}
	if s.defaultWindow == "" {
		s.defaultWindow = notam.Window24h
	}
	if s.retention <= 0 {
		s.retention = storage.DefaultRetention
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Handler returns the full router with middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RequestSize(MaxBodyBytes))

	// CORS for browser access.
	r.Use(corsMiddleware)

	r.Mount("/api/v1", s.Router())
	return r
}

// Router returns the /api/v1 routes for embedding in other servers.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Health check (no auth required).
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		// Optional authentication.
		if s.authEnabled {
			r.Use(s.authMiddleware)
		}

		r.Post("/briefings/parse", s.handleParse)
		r.Post("/briefings/filter", s.handleFilter)
		r.Post("/briefings/group", s.handleGroup)

		r.Get("/briefings", s.handleListBriefings)
		r.Get("/briefings/{id}", s.handleGetBriefing)
		r.Get("/notams/search", s.handleSearch)
		r.Get("/stats", s.handleStats)

		r.Post("/maintenance/cleanup", s.handleCleanup)
	})

	return r
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := ":" + strconv.Itoa(s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("NOTAM API starting at http://localhost%s", addr)
	if s.authEnabled {
		log.Printf("Authentication: ENABLED (API key required)")
	} else {
		log.Printf("Authentication: DISABLED (open access)")
	}
	if s.store == nil {
		log.Printf("Storage: DISABLED (briefing endpoints answer 503)")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authMiddleware validates API key authentication.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check X-API-Key header first.
		apiKey := r.Header.Get("X-API-Key")

		// Fall back to Authorization: Bearer <key>.
		if apiKey == "" {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				apiKey = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		// Fall back to query parameter (for simple testing).
		if apiKey == "" {
			apiKey = r.URL.Query().Get("api_key")
		}

		if apiKey == "" {
			writeError(w, http.StatusUnauthorized, "API key required")
			return
		}

		if !s.apiKeys[apiKey] {
			writeError(w, http.StatusForbidden, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
