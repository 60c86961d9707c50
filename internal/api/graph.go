package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/guestmatch/guestmatch/internal/metrics"
	"github.com/guestmatch/guestmatch/pkg/matchgraph"
	"github.com/guestmatch/guestmatch/pkg/surface"
)

// EventSummary is the listing entry for an event.
type EventSummary struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Guests int    `json:"guests"`
}

// ShortlistResponse is returned by the shortlist endpoint.
type ShortlistResponse struct {
	Viewer    string             `json:"viewer"`
	Shortlist []matchgraph.Match `json:"shortlist"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"events": len(h.events.List()),
	})
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.events.List()
	out := make([]EventSummary, 0, len(events))
	for _, ev := range events {
		out = append(out, EventSummary{Slug: ev.Slug, Name: ev.Name, Guests: ev.Roster.Len()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGraph(w http.ResponseWriter, r *http.Request) {
	res, ok := h.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleShortlist(w http.ResponseWriter, r *http.Request) {
	res, ok := h.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ShortlistResponse{Viewer: res.Viewer, Shortlist: res.Shortlist})
}

func (h *Handler) handleGuest(w http.ResponseWriter, r *http.Request) {
	ev := h.event(w, r)
	if ev == nil {
		return
	}

	card, err := surface.LookupCard(ev.Roster, r.URL.Query().Get("viewer"), r.PathValue("guest"))
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// build resolves the event and viewer and runs the pipeline. It writes the
// error response itself and reports whether the caller should continue.
func (h *Handler) build(w http.ResponseWriter, r *http.Request) (*matchgraph.Result, bool) {
	ev := h.event(w, r)
	if ev == nil {
		return nil, false
	}

	name := r.URL.Query().Get("name")
	if err := surface.CheckName(name); err != nil {
		h.metrics.IncLookup(ev.Slug, metrics.ResultInvalid)
		h.writeLookupError(w, err)
		return nil, false
	}

	done := metrics.TimeBuild(h.metrics, ev.Slug)
	res, err := h.builder.Build(name, ev.Roster)
	if err != nil {
		done(metrics.ResultNotFound)
		h.writeLookupError(w, err)
		return nil, false
	}
	done(metrics.ResultFound)

	h.log.Debug("built match graph",
		zap.String("event", ev.Slug),
		zap.String("viewer", res.Viewer),
		zap.Int("nodes", len(res.Nodes)),
		zap.Int("links", len(res.Links)),
	)
	return res, true
}

func (h *Handler) event(w http.ResponseWriter, r *http.Request) *Event {
	slug := r.PathValue("event")
	ev := h.events.Get(slug)
	if ev == nil {
		writeError(w, http.StatusNotFound, "event not found")
	}
	return ev
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, surface.ErrBlankName):
		writeError(w, http.StatusBadRequest, surface.Message(err))
	case errors.Is(err, matchgraph.ErrGuestNotFound):
		writeError(w, http.StatusNotFound, surface.Message(err))
	default:
		h.log.Error("lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, surface.Message(err))
	}
}
