package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minsung-kang/dalcal/internal/grid"
	"github.com/minsung-kang/dalcal/internal/model"
)

// BlobKey is the blob store entry holding the serialized event collection.
const BlobKey = "calendar_events"

// ErrEmptyTitle is returned when an event is created with a blank title.
var ErrEmptyTitle = errors.New("event title is empty")

// EventStore owns the event collection. All reads are served from memory;
// every mutation persists the full collection through the blob store and
// (re)schedules reminders through the notifier. Persistence and notification
// failures are logged and never undo the in-memory mutation.
type EventStore struct {
	blob     Blob
	notifier Notifier
	logger   *slog.Logger

	events []model.Event
}

// NewEventStore loads the persisted collection and returns the store.
// A missing or corrupt blob yields an empty collection.
func NewEventStore(blob Blob, notifier Notifier, logger *slog.Logger) *EventStore {
	s := &EventStore{blob: blob, notifier: notifier, logger: logger}

	data, err := blob.Load(BlobKey)
	if err != nil {
		logger.Warn("load events failed, starting empty", "error", err)
		return s
	}
	if data == nil {
		return s
	}

	events, err := UnmarshalEvents(data)
	if err != nil {
		logger.Warn("decode events failed, starting empty", "error", err)
		return s
	}
	s.events = events
	return s
}

// Add validates and appends a new event. The event keeps its caller-assigned
// ID when present so callers can pre-generate one; otherwise a fresh UUID is
// assigned. Returns the stored event.
func (s *EventStore) Add(e model.Event) (*model.Event, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return nil, ErrEmptyTitle
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	s.events = append(s.events, e)
	s.persist()
	s.scheduleAlerts(e)

	return &e, nil
}

// Update replaces the event with the same ID. Unknown IDs are a no-op.
func (s *EventStore) Update(e model.Event) {
	for i := range s.events {
		if s.events[i].ID != e.ID {
			continue
		}
		s.notifier.Cancel(alertIDs(s.events[i]))
		s.events[i] = e
		s.persist()
		if e.NotificationEnabled {
			s.scheduleAlerts(e)
		}
		return
	}
}

// Delete removes every event with the given ID and cancels its alerts.
// A second delete with the same ID is a no-op.
func (s *EventStore) Delete(id string) {
	kept := s.events[:0]
	removed := false
	for _, e := range s.events {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}

	s.events = kept
	s.notifier.Cancel(alertIDs(model.Event{ID: id}))
	s.persist()
}

// Get returns the event with the given ID, or nil.
func (s *EventStore) Get(id string) *model.Event {
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e
		}
	}
	return nil
}

// All returns a copy of the full collection in insertion order.
func (s *EventStore) All() []model.Event {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventsForDay returns every event whose timestamp falls on the same calendar
// day as d. Order is unspecified; callers sort for display.
func (s *EventStore) EventsForDay(d time.Time) []model.Event {
	var out []model.Event
	for _, e := range s.events {
		if grid.SameDay(e.Timestamp, d) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForWeek returns every event whose timestamp falls inside the
// Sunday-start week containing d.
func (s *EventStore) EventsForWeek(d time.Time) []model.Event {
	start := grid.StartOfWeek(d)
	end := start.AddDate(0, 0, 7)

	var out []model.Event
	for _, e := range s.events {
		if !e.Timestamp.Before(start) && e.Timestamp.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

func (s *EventStore) persist() {
	data, err := MarshalEvents(s.events)
	if err != nil {
		s.logger.Error("encode events", "error", err)
		return
	}
	if err := s.blob.Save(BlobKey, data); err != nil {
		s.logger.Error("persist events", "error", err)
	}
}

func (s *EventStore) scheduleAlerts(e model.Event) {
	if !e.NotificationEnabled {
		return
	}

	s.notifier.Schedule(AlertRequest{
		ID:       e.ID,
		Title:    "일정 알림",
		Body:     e.Title,
		FireTime: e.Timestamp,
	})

	if e.ReminderLead != model.ReminderNone {
		s.notifier.Schedule(AlertRequest{
			ID:       e.ID + "_reminder",
			Title:    fmt.Sprintf("%d분 전 알림", int(e.ReminderLead)),
			Body:     e.Title,
			FireTime: e.Timestamp.Add(-time.Duration(e.ReminderLead) * time.Minute),
		})
	}
}

// alertIDs lists every alert identifier an event may have scheduled.
func alertIDs(e model.Event) []string {
	return []string{e.ID, e.ID + "_reminder"}
}
