package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notam_parser/internal/api"
	"notam_parser/internal/config"
	"notam_parser/internal/ingest"
	"notam_parser/internal/storage"
)

// stores is the opened storage for a command.
type stores struct {
	briefings storage.BriefingStore
	analytics *storage.ClickHouseDB
	closers   []func()
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStores opens the configured briefing store and, when enabled, the
// ClickHouse analytics store.
func openStores(ctx context.Context, c *config.Config) (*stores, error) {
	s := &stores{}
	switch c.Storage.Backend {
	case config.BackendPostgres:
		pg, err := storage.OpenPostgres(ctx, c.Storage.Postgres)
		if err != nil {
			return nil, err
		}
		s.briefings = pg
		s.closers = append(s.closers, pg.Close)
	default:
		a, err := storage.OpenArchive(c.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.briefings = a
		s.closers = append(s.closers, func() { _ = a.Close() })
	}

	if c.Storage.Analytics {
		ch, err := storage.OpenClickHouse(ctx, c.Storage.ClickHouse)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.analytics = ch
		s.closers = append(s.closers, func() { _ = ch.Close() })
	}
	return s, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func serveCmd() *cobra.Command {
	var port int
	var noStore bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			window, err := cfg.Pipeline.Window()
			if err != nil {
				return err
			}
			apiCfg := api.Config{
				Port:          cfg.Server.Port,
				AuthEnabled:   cfg.Server.AuthEnabled,
				APIKeys:       cfg.Server.APIKeys,
				DefaultWindow: window,
				Retention:     cfg.Pipeline.Retention(),
			}
			if port > 0 {
				apiCfg.Port = port
			}

			var store storage.BriefingStore
			if !noStore {
				s, err := openStores(ctx, cfg)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s.briefings
				if s.analytics != nil {
					apiCfg.Analytics = s.analytics
				}
			}

			return api.NewServer(store, apiCfg).Run(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides server.port)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "run without storage; only stateless endpoints work")
	return cmd
}

func ingestCmd() *cobra.Command {
	var persist bool
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Parse briefings from NATS",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			nc, err := ingest.Connect(cfg.NATS.URL)
			if err != nil {
				return err
			}
			defer nc.Close()

			wcfg := ingest.Config{
				RawSubject:    cfg.NATS.RawSubject,
				ParsedSubject: cfg.NATS.ParsedSubject,
				Queue:         cfg.NATS.Queue,
			}
			if persist {
				s, err := openStores(ctx, cfg)
				if err != nil {
					return err
				}
				defer s.Close()
				wcfg.Store = s.briefings
				if s.analytics != nil {
					wcfg.Analytics = s.analytics
				}
			}

			return ingest.NewWorker(wcfg).Run(ctx, nc)
		},
	}
	cmd.Flags().BoolVar(&persist, "store", true, "store parsed briefings")
	return cmd
}

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search stored NOTAM text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStores(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			query := strings.Join(args, " ")
			hits, err := s.briefings.Search(cmd.Context(), query, limit)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(os.Stdout, hits)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Briefing", "NOTAM", "Location", "Category", "Text"})
			for _, h := range hits {
				tw.AppendRow(table.Row{h.BriefingID.String()[:8], h.Notam.NotamID, h.Notam.Location(),
					h.Notam.Group.Label(), truncate(h.Notam.FieldE, maxTextWidth)})
			}
			tw.SetCaption("%d hits for %q", len(hits), query)
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum hits")
	return cmd
}

func cleanupCmd() *cobra.Command {
	var days int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete briefings older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStores(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			retention := cfg.Pipeline.Retention()
			if days > 0 {
				retention = time.Duration(days) * 24 * time.Hour
			}
			now, err := referenceTime()
			if err != nil {
				return err
			}
			cutoff := now.Add(-retention)

			expired, err := s.briefings.CountExpiredBriefings(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("%d briefings received before %s would be deleted\n", expired, cutoff.Format(time.RFC3339))
				return nil
			}

			deleted, err := s.briefings.DeleteExpiredBriefings(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			log.Printf("Deleted %d briefings received before %s", deleted, cutoff.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days (overrides pipeline.retention_days)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only count what would be deleted")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create database schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cfg.Storage.Backend != config.BackendPostgres {
				// The archive creates its schema on open.
				a, err := storage.OpenArchive(cfg.Storage.SQLitePath)
				if err != nil {
					return err
				}
				_ = a.Close()
				log.Printf("SQLite archive ready at %s", cfg.Storage.SQLitePath)
				if !cfg.Storage.Analytics {
					return nil
				}
				ch, err := storage.OpenClickHouse(ctx, cfg.Storage.ClickHouse)
				if err != nil {
					return err
				}
				defer func() { _ = ch.Close() }()
				return ch.CreateSchema(ctx)
			}

			db, err := storage.Open(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			if err := db.CreateSchemas(ctx); err != nil {
				return err
			}
			log.Printf("Schemas created")
			return nil
		},
	}
}
