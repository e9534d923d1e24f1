// Package ingest parses briefings delivered over NATS and publishes the
// results.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"notam_parser/internal/pipeline"
	"notam_parser/internal/source"
	"notam_parser/internal/storage"
	"notam_parser/internal/textnorm"
)

// Request is a briefing submitted on the raw subject. A message whose body
// is not a JSON object is treated as plain briefing text.
type Request struct {
	Source   string `json:"source,omitempty"`
	Text     string `json:"text"`
	HTML     bool   `json:"html,omitempty"`
	Document *bool  `json:"document,omitempty"`
	Now      string `json:"now,omitempty"` // RFC3339.
}

// Response is published on the parsed subject and sent as the reply.
type Response struct {
	BriefingID uuid.UUID `json:"briefingId"`
	Source     string    `json:"source,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
	Stored     bool      `json:"stored"`
	Error      string    `json:"error,omitempty"`
	*pipeline.Result
}

// Store persists parsed briefings.
type Store interface {
	StoreBriefing(ctx context.Context, b storage.Briefing) error
}

// RunRecorder records parse runs for analytics.
type RunRecorder interface {
	InsertRun(ctx context.Context, b storage.Briefing) error
}

// Publisher is the part of *nats.Conn the worker publishes through.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Config holds worker settings.
type Config struct {
	RawSubject    string
	ParsedSubject string
	Queue         string
	Store         Store       // Optional.
	Analytics     RunRecorder // Optional.
	Timeout       time.Duration
	Now           func() time.Time
}

// Worker handles raw briefing messages.
type Worker struct {
	parser *pipeline.Parser
	cfg    Config
}

// NewWorker creates a worker.
func NewWorker(cfg Config) *Worker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Worker{parser: pipeline.Default(), cfg: cfg}
}

// Connect opens a NATS connection that keeps reconnecting.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("notam_parser"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return nc, nil
}

func decodeRequest(data []byte) (Request, error) {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "{") {
		return Request{Text: string(data)}, nil
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// Process parses one message body. The returned Response always carries a
// briefing ID; Error is set when the request could not be parsed.
func (w *Worker) Process(ctx context.Context, data []byte) Response {
	received := w.cfg.Now().UTC()
	resp := Response{BriefingID: uuid.New(), ReceivedAt: received}

	req, err := decodeRequest(data)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Source = req.Source

	now := received
	if req.Now != "" {
		if now, err = time.Parse(time.RFC3339, req.Now); err != nil {
			resp.Error = fmt.Sprintf("now must be RFC3339: %v", err)
			return resp
		}
		now = now.UTC()
	}

	text := textnorm.Clean(req.Text)
	if req.HTML {
		if text, err = source.FromHTML(strings.NewReader(req.Text)); err != nil {
			resp.Error = err.Error()
			return resp
		}
	}

	var res pipeline.Result
	if req.Document == nil || *req.Document {
		res = w.parser.ParseDocument(text, now)
	} else {
		res = w.parser.ParseText(text, now)
	}
	resp.Result = &res

	b := storage.NewBriefing(req.Source, text, res, received)
	b.ID = resp.BriefingID

	if w.cfg.Store != nil {
		if err := w.cfg.Store.StoreBriefing(ctx, b); err != nil {
			log.Printf("Store briefing %s failed: %v", b.ID, err)
			resp.Error = "store failed"
		} else {
			resp.Stored = true
		}
	}
	if w.cfg.Analytics != nil {
		if err := w.cfg.Analytics.InsertRun(ctx, b); err != nil {
			log.Printf("Record parse run %s failed: %v", b.ID, err)
		}
	}
	return resp
}

// Handle processes m, publishes the result on the parsed subject and replies
// when the sender asked for one.
func (w *Worker) Handle(pub Publisher, m *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.Timeout)
	defer cancel()

	resp := w.Process(ctx, m.Data)
	out, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Marshal response for %s failed: %v", resp.BriefingID, err)
		return
	}

	if resp.Error == "" && w.cfg.ParsedSubject != "" {
		if err := pub.Publish(w.cfg.ParsedSubject, out); err != nil {
			log.Printf("Publish %s failed: %v", w.cfg.ParsedSubject, err)
		}
	}
	if m.Reply != "" {
		if err := pub.Publish(m.Reply, out); err != nil {
			log.Printf("Reply to %s failed: %v", m.Reply, err)
		}
	}

	notams := 0
	if resp.Result != nil {
		notams = len(resp.Notams)
	}
	log.Printf("Briefing %s: %d NOTAMs (source=%q stored=%t)", resp.BriefingID, notams, resp.Source, resp.Stored)
}

// Run subscribes to the raw subject in the worker's queue group and handles
// messages until ctx is cancelled, then drains the subscription.
func (w *Worker) Run(ctx context.Context, nc *nats.Conn) error {
	if w.cfg.RawSubject == "" {
		return errors.New("raw subject is required")
	}

	sub, err := nc.QueueSubscribe(w.cfg.RawSubject, w.cfg.Queue, func(m *nats.Msg) {
		w.Handle(nc, m)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", w.cfg.RawSubject, err)
	}
	log.Printf("Ingest listening on %s (queue %q), publishing to %s", w.cfg.RawSubject, w.cfg.Queue, w.cfg.ParsedSubject)

	<-ctx.Done()
	log.Printf("Draining %s", w.cfg.RawSubject)
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	return nil
}
