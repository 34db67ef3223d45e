package store

import "time"

// AlertRequest describes one reminder alert to fire at a point in time.
type AlertRequest struct {
	ID       string
	Title    string
	Body     string
	FireTime time.Time
}

// Notifier schedules and cancels alerts. Implementations are fire-and-forget:
// they log failures instead of returning them, so a calendar mutation never
// blocks or fails on delivery.
type Notifier interface {
	Schedule(req AlertRequest)
	Cancel(ids []string)
}

// NopNotifier is a Notifier that does nothing. Used in tests and when
// notifications are disabled by configuration.
type NopNotifier struct{}

func (NopNotifier) Schedule(AlertRequest) {}

func (NopNotifier) Cancel([]string) {}
