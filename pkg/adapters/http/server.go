// Package http exposes snapshots and live transitions of navigation
// controllers over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/navstack"
	"github.com/aretw0/navstack/internal/logging"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the inspector API.
type Server struct {
	Store    ports.SnapshotStore
	Streams  *StreamManager
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithStreams enables GET /events backed by sm.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithGatherer enables GET /metrics for g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates the inspector router for store.
func NewHandler(store ports.SnapshotStore, opts ...Option) http.Handler {
	s := &Server{
		Store:  store,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/snapshots", func(r chi.Router) {
		r.Get("/", s.ListSnapshots)
		r.Get("/{key}", s.GetSnapshot)
		r.Delete("/{key}", s.DeleteSnapshot)
	})
	if s.Streams != nil {
		r.Get("/events", s.SubscribeEvents)
	}
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "navstack-inspector",
		"version": strings.TrimSpace(navstack.Version),
	})
}

// SnapshotSummary is one row of GET /snapshots.
type SnapshotSummary struct {
	Key         string `json:"key"`
	ContainerID string `json:"container_id"`
	Depth       int    `json:"depth"`
	Top         string `json:"top,omitempty"`
}

// ListSnapshots handles GET /snapshots.
func (s *Server) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	keys, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ListSnapshots failed", "error", err)
		return
	}

	out := make([]SnapshotSummary, 0, len(keys))
	for _, key := range keys {
		snap, err := s.Store.Load(r.Context(), key)
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			continue // expired between List and Load
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("load error: %v", err), http.StatusInternalServerError)
			s.Logger.Error("ListSnapshots load failed", "key", key, "error", err)
			return
		}
		sum := SnapshotSummary{Key: key, ContainerID: snap.ContainerID, Depth: snap.Depth()}
		if top, ok := snap.Top(); ok {
			sum.Top = top.Kind
		}
		out = append(out, sum)
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetSnapshot handles GET /snapshots/{key}.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	snap, err := s.Store.Load(r.Context(), key)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetSnapshot failed", "key", key, "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// DeleteSnapshot handles DELETE /snapshots/{key}.
func (s *Server) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.Store.Delete(r.Context(), key); err != nil {
		http.Error(w, fmt.Sprintf("delete error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("DeleteSnapshot failed", "key", key, "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubscribeEvents handles GET /events (SSE).
// The optional "key" query parameter restricts the stream to one controller.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	key := r.URL.Query().Get("key")
	ch, cancel := s.Streams.Subscribe(key)
	defer cancel()

	s.Logger.Info("SSE: client subscribed", "key", key)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE: client disconnected", "key", key)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
