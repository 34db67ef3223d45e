package notify

import (
	"log/slog"
	"testing"
	"time"

	"github.com/minsung-kang/dalcal/internal/database"
	"github.com/minsung-kang/dalcal/internal/store"
)

type recordingSender struct {
	sent []Payload
	err  error
}

func (r *recordingSender) Send(sub *store.PushSubscription, payload Payload) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, payload)
	return nil
}

func setupScheduler(t *testing.T) (*Scheduler, *recordingSender, *store.PushStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	subs := store.NewPushStore(db)
	sender := &recordingSender{}
	s := &Scheduler{
		pending: make(map[string]store.AlertRequest),
		service: sender,
		subs:    subs,
		logger:  slog.New(slog.DiscardHandler),
	}
	return s, sender, subs
}

func TestScheduleDropsPastFireTimes(t *testing.T) {
	s, _, _ := setupScheduler(t)

	s.Schedule(store.AlertRequest{ID: "past", FireTime: time.Now().Add(-time.Minute)})
	if s.PendingCount() != 0 {
		t.Error("past alert should not be queued")
	}

	s.Schedule(store.AlertRequest{ID: "future", FireTime: time.Now().Add(time.Hour)})
	if s.PendingCount() != 1 {
		t.Error("future alert should be queued")
	}
}

func TestCancelRemovesPending(t *testing.T) {
	s, _, _ := setupScheduler(t)

	s.Schedule(store.AlertRequest{ID: "a", FireTime: time.Now().Add(time.Hour)})
	s.Schedule(store.AlertRequest{ID: "a_reminder", FireTime: time.Now().Add(30 * time.Minute)})
	s.Cancel([]string{"a", "a_reminder"})

	if s.PendingCount() != 0 {
		t.Errorf("pending = %d, want 0", s.PendingCount())
	}
}

func TestTickDeliversDueAlerts(t *testing.T) {
	s, sender, subs := setupScheduler(t)

	if _, err := subs.CreateSubscription("https://push.example/one", "k", "a", ""); err != nil {
		t.Fatalf("create sub: %v", err)
	}

	base := time.Now()
	s.Schedule(store.AlertRequest{ID: "due", Title: "일정 알림", Body: "Dentist", FireTime: base.Add(time.Minute)})
	s.Schedule(store.AlertRequest{ID: "later", Title: "일정 알림", Body: "Flight", FireTime: base.Add(time.Hour)})

	s.tick(base.Add(2 * time.Minute))

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d payloads, want 1", len(sender.sent))
	}
	if sender.sent[0].Body != "Dentist" {
		t.Errorf("body = %q, want Dentist", sender.sent[0].Body)
	}
	if s.PendingCount() != 1 {
		t.Errorf("pending = %d, want the later alert only", s.PendingCount())
	}
}

func TestTickPrunesExpiredSubscriptions(t *testing.T) {
	s, sender, subs := setupScheduler(t)

	subs.CreateSubscription("https://push.example/stale", "k", "a", "")
	sender.err = ErrExpired

	s.Schedule(store.AlertRequest{ID: "due", FireTime: time.Now().Add(time.Minute)})
	s.tick(time.Now().Add(2 * time.Minute))

	remaining, err := subs.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expired subscription should have been removed, got %+v", remaining)
	}
}
