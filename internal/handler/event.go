package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/minsung-kang/dalcal/internal/model"
	"github.com/minsung-kang/dalcal/internal/store"
	"github.com/minsung-kang/dalcal/internal/websocket"
)

type EventHandler struct {
	events *store.EventStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewEventHandler(es *store.EventStore, hub *websocket.Hub, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: es, hub: hub, logger: logger}
}

type eventRequest struct {
	Title               string `json:"title"`
	Timestamp           string `json:"timestamp"`
	Memo                string `json:"memo"`
	Icon                string `json:"icon"`
	Color               string `json:"color"`
	NotificationEnabled bool   `json:"notification_enabled"`
	ReminderLead        int    `json:"reminder_lead"`
}

func (h *EventHandler) parseAndValidate(r *http.Request, w http.ResponseWriter) (model.Event, bool) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return model.Event{}, false
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return model.Event{}, false
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "timestamp must be RFC3339 format"})
		return model.Event{}, false
	}

	return model.Event{
		Title:               req.Title,
		Timestamp:           ts,
		Memo:                req.Memo,
		Icon:                model.ParseIcon(req.Icon),
		Color:               model.ParseColor(req.Color),
		NotificationEnabled: req.NotificationEnabled,
		ReminderLead:        model.ParseReminderLead(req.ReminderLead),
	}, true
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	e, ok := h.parseAndValidate(r, w)
	if !ok {
		return
	}

	created, err := h.events.Add(e)
	if err != nil {
		h.logger.Error("create event", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create event"})
		return
	}

	h.broadcast("event_created", *created)
	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/events, optionally filtered by ?date= or ?week=.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("date") != "":
		d, err := dateParam(r, "date")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		writeJSON(w, http.StatusOK, sortedByTime(h.events.EventsForDay(d)))
	case q.Get("week") != "":
		d, err := dateParam(r, "week")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week must be YYYY-MM-DD"})
			return
		}
		writeJSON(w, http.StatusOK, sortedByTime(h.events.EventsForWeek(d)))
	default:
		writeJSON(w, http.StatusOK, sortedByTime(h.events.All()))
	}
}

// sortedByTime orders events ascending by timestamp. The store returns
// filtered slices in insertion order; the wire format promises time order.
// An empty result serializes as [] rather than null.
func sortedByTime(events []model.Event) []model.Event {
	if events == nil {
		return []model.Event{}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}

// Get handles GET /api/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event ID"})
		return
	}

	e := h.events.Get(id)
	if e == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}

	writeJSON(w, http.StatusOK, e)
}

// Update handles PUT /api/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event ID"})
		return
	}

	if h.events.Get(id) == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}

	e, ok := h.parseAndValidate(r, w)
	if !ok {
		return
	}
	e.ID = id

	h.events.Update(e)
	h.broadcast("event_updated", e)
	writeJSON(w, http.StatusOK, h.events.Get(id))
}

// Delete handles DELETE /api/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event ID"})
		return
	}

	e := h.events.Get(id)
	if e == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}

	h.events.Delete(id)
	h.broadcast("event_deleted", *e)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *EventHandler) broadcast(msgType string, e model.Event) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(websocket.Message{
		Type:    msgType,
		EventID: e.ID,
		Date:    e.Timestamp.Format("2006-01-02"),
	})
}
