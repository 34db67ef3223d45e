package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minsung-kang/dalcal/internal/controller"
	"github.com/minsung-kang/dalcal/internal/store"
)

func newTestCalendarHandler(t *testing.T) *CalendarHandler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	es := store.NewEventStore(newMemBlob(), store.NopNotifier{}, logger)
	return NewCalendarHandler(controller.New(es), logger)
}

func calendarRouter(h *CalendarHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/calendar/month", h.Month)
	mux.HandleFunc("GET /api/calendar/week", h.Week)
	mux.HandleFunc("POST /api/calendar/next", h.Next)
	mux.HandleFunc("POST /api/calendar/previous", h.Previous)
	mux.HandleFunc("POST /api/calendar/today", h.Today)
	mux.HandleFunc("POST /api/calendar/select", h.Select)
	mux.HandleFunc("POST /api/calendar/mode", h.Mode)
	mux.HandleFunc("POST /api/deeplink", h.DeepLink)
	return mux
}

func TestCalendarMonth(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	req := httptest.NewRequest("GET", "/api/calendar/month", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var view controller.CalendarView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if n := len(view.Days); n%7 != 0 || n < 35 {
		t.Errorf("month view has %d days, want a multiple of 7 of at least 35", n)
	}
}

func TestCalendarWeekHasSevenDays(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/calendar/week", nil))

	var view controller.CalendarView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(view.Days) != 7 {
		t.Errorf("week view has %d days, want 7", len(view.Days))
	}
}

func TestCalendarNavigation(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/calendar/next", bytes.NewBufferString("{}")))
	if rec.Code != http.StatusOK {
		t.Fatalf("next status = %d, want %d", rec.Code, http.StatusOK)
	}

	var after controller.CalendarView
	if err := json.Unmarshal(rec.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, httptest.NewRequest("POST", "/api/calendar/today", bytes.NewBufferString("{}")))
	var today controller.CalendarView
	if err := json.Unmarshal(rec2.Body.Bytes(), &today); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if after.State.Anchor.Equal(today.State.Anchor) {
		t.Error("next period should move the anchor away from today")
	}
}

func TestCalendarSelect(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"date":"2025-06-18"}`)
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/calendar/select", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var view controller.CalendarView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := view.State.Selected.Format("2006-01-02"); got != "2025-06-18" {
		t.Errorf("selected = %s, want 2025-06-18", got)
	}
}

func TestCalendarSelectRejectsBadDate(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"date":"18-06-2025"}`)
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/calendar/select", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCalendarModeRejectsUnknown(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"mode":"year"}`)
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/calendar/mode", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDeepLinkMovesSelection(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"url":"dalcal://date/2026-03-01"}`)
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/deeplink", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var view controller.CalendarView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := view.State.Selected.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("selected = %s, want 2026-03-01", got)
	}
}

func TestDeepLinkRejectsForeignScheme(t *testing.T) {
	h := newTestCalendarHandler(t)
	mux := calendarRouter(h)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"url":"https://date/2026-03-01"}`)
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/api/deeplink", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
