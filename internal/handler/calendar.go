package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/minsung-kang/dalcal/internal/controller"
	"github.com/minsung-kang/dalcal/internal/model"
)

// CalendarHandler exposes the shared navigation state over HTTP. The
// controller itself is single-threaded, so every request holds the mutex.
type CalendarHandler struct {
	mu     sync.Mutex
	cal    *controller.Controller
	logger *slog.Logger
}

func NewCalendarHandler(cal *controller.Controller, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{cal: cal, logger: logger}
}

// Month handles GET /api/calendar/month
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view := h.cal.MonthView()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// Week handles GET /api/calendar/week
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view := h.cal.WeekView()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// Next handles POST /api/calendar/next
func (h *CalendarHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, func() { h.cal.NextPeriod() })
}

// Previous handles POST /api/calendar/previous
func (h *CalendarHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, func() { h.cal.PreviousPeriod() })
}

// Today handles POST /api/calendar/today
func (h *CalendarHandler) Today(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, func() { h.cal.GoToToday() })
}

type selectRequest struct {
	Date string `json:"date"`
}

// Select handles POST /api/calendar/select
func (h *CalendarHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	d, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	h.mutate(w, func() { h.cal.SelectDate(d) })
}

type modeRequest struct {
	Mode string `json:"mode"`
}

// Mode handles POST /api/calendar/mode
func (h *CalendarHandler) Mode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	mode := model.ViewMode(req.Mode)
	if mode != model.ViewMonth && mode != model.ViewWeek {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mode must be month or week"})
		return
	}

	h.mutate(w, func() { h.cal.SetViewMode(mode) })
}

type deepLinkRequest struct {
	URL string `json:"url"`
}

// DeepLink handles POST /api/deeplink
func (h *CalendarHandler) DeepLink(w http.ResponseWriter, r *http.Request) {
	var req deepLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.mu.Lock()
	err := h.cal.OpenDeepLink(req.URL)
	if err != nil {
		h.mu.Unlock()
		h.logger.Warn("deep link rejected", "url", req.URL, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unrecognized deep link"})
		return
	}
	view := h.cal.View()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (h *CalendarHandler) mutate(w http.ResponseWriter, fn func()) {
	h.mu.Lock()
	fn()
	view := h.cal.View()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}
