// Package http exposes the reflex engine over a small JSON API: catalog
// listing, command execution, redo and journal access, plus Prometheus
// metrics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/reflex/pkg/action"
	"github.com/aretw0/reflex/pkg/domain"
)

// Engine defines the interface for the reflex engine core.
type Engine interface {
	Execute(ctx context.Context, name string, extras action.Extras) (*domain.ExecutionRecord, error)
	Redo(ctx context.Context) (*domain.ExecutionRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error)
	Commands() []domain.CommandInfo
}

// Server handles the HTTP surface for an Engine.
type Server struct {
	Engine Engine
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine) http.Handler {
	server := &Server{Engine: engine}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/commands", server.ListCommands)
	r.Post("/commands/{name}/execute", server.ExecuteCommand)
	r.Post("/redo", server.Redo)
	r.Get("/journal", server.Journal)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListCommands handles GET /commands.
func (s *Server) ListCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Commands())
}

// ExecuteCommand handles POST /commands/{name}/execute. The body is the
// extras mapping for the trigger event; an empty body means no extras.
func (s *Server) ExecuteCommand(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var extras action.Extras
	if err := json.NewDecoder(r.Body).Decode(&extras); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Execute: invalid request body", "err", err)
		return
	}

	rec, err := s.Engine.Execute(r.Context(), name, extras)
	if errors.Is(err, domain.ErrCommandNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	// Action failures are part of the record; the request itself worked.
	writeJSON(w, http.StatusOK, rec)
}

// Redo handles POST /redo.
func (s *Server) Redo(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Engine.Redo(r.Context())
	if errors.Is(err, domain.ErrNoJournalEntries) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if rec == nil && err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Journal handles GET /journal?limit=n.
func (s *Server) Journal(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	recs, err := s.Engine.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Journal read failed", "err", err)
		return
	}
	if recs == nil {
		recs = []domain.ExecutionRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}
