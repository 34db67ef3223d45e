// Package notify delivers event reminders over web push. The event store
// talks to the store.Notifier interface only; delivery is best-effort and
// never blocks or fails a calendar mutation.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/minsung-kang/dalcal/internal/store"
)

const tickInterval = 30 * time.Second

// sender delivers one payload to one subscription. Satisfied by *Service;
// narrowed to an interface for tests.
type sender interface {
	Send(sub *store.PushSubscription, payload Payload) error
}

// Scheduler implements store.Notifier by holding pending alerts in memory and
// delivering the due ones to every registered push subscription on a fixed
// tick. Alerts whose fire time already passed when scheduled are dropped.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]store.AlertRequest

	service  sender
	subs     *store.PushStore
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a reminder scheduler. Call Start to begin delivery.
func NewScheduler(svc *Service, subs *store.PushStore, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pending:  make(map[string]store.AlertRequest),
		service:  svc,
		subs:     subs,
		logger:   logger,
		interval: tickInterval,
	}
}

// Schedule registers an alert. Replaces any pending alert with the same ID.
func (s *Scheduler) Schedule(req store.AlertRequest) {
	if !req.FireTime.After(time.Now()) {
		return
	}
	s.mu.Lock()
	s.pending[req.ID] = req
	s.mu.Unlock()
}

// Cancel drops any pending alerts with the given IDs.
func (s *Scheduler) Cancel(ids []string) {
	s.mu.Lock()
	for _, id := range ids {
		delete(s.pending, id)
	}
	s.mu.Unlock()
}

// PendingCount returns the number of alerts waiting to fire.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Start begins the delivery loop.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(time.Now())
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.done != nil {
		<-s.done
	}
}

func (s *Scheduler) tick(now time.Time) {
	s.mu.Lock()
	var due []store.AlertRequest
	for id, req := range s.pending {
		if !req.FireTime.After(now) {
			due = append(due, req)
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	for _, req := range due {
		s.deliver(req)
	}
}

func (s *Scheduler) deliver(req store.AlertRequest) {
	subs, err := s.subs.List()
	if err != nil {
		s.logger.Error("list subscriptions", "error", err)
		return
	}

	payload := Payload{
		Title: req.Title,
		Body:  req.Body,
		Tag:   req.ID,
	}

	for i := range subs {
		if err := s.service.Send(&subs[i], payload); err != nil {
			if errors.Is(err, ErrExpired) {
				if err := s.subs.DeleteByEndpoint(subs[i].Endpoint); err != nil {
					s.logger.Warn("prune expired subscription", "endpoint", subs[i].Endpoint, "error", err)
				}
				continue
			}
			s.logger.Warn("send alert", "id", req.ID, "error", err)
		}
	}
}
