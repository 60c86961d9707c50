// Package api implements the guestmatch REST API.
// It serves match graphs for rosters that were loaded at startup.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/guestmatch/guestmatch/internal/metrics"
	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

// Handler is the top-level API handler.
type Handler struct {
	events  *Registry
	builder *matchgraph.Builder
	log     *zap.Logger
	metrics metrics.Recorder
}

// Option customizes a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for request-scoped errors.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// WithRecorder overrides the global metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(h *Handler) { h.metrics = rec }
}

// NewHandler creates a new API handler. A nil builder uses the default layout.
func NewHandler(events *Registry, builder *matchgraph.Builder, opts ...Option) *Handler {
	if builder == nil {
		builder = matchgraph.NewBuilder(matchgraph.Defaults())
	}
	h := &Handler{
		events:  events,
		builder: builder,
		log:     zap.NewNop(),
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)

	mux.HandleFunc("GET /api/events", h.handleListEvents)
	mux.HandleFunc("GET /api/events/{event}/graph", h.handleGraph)
	mux.HandleFunc("GET /api/events/{event}/shortlist", h.handleShortlist)
	mux.HandleFunc("GET /api/events/{event}/guests/{guest}", h.handleGuest)
}

// Routes returns the API behind the standard middleware stack. Instrument
// sits closest to the mux so it sees the matched route pattern.
func (h *Handler) Routes(corsOrigin string) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return Chain(mux, CORS(corsOrigin), RequestID, AccessLog(h.log), Instrument(h.metrics))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
