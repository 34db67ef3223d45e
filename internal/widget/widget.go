// Package widget is the read-only companion surface: it reads the event blob
// the main app persists and answers the two queries the home-screen widget
// renders. It never writes and must work when the main app is not running.
package widget

import (
	"log/slog"
	"sort"
	"time"

	"github.com/minsung-kang/dalcal/internal/grid"
	"github.com/minsung-kang/dalcal/internal/model"
	"github.com/minsung-kang/dalcal/internal/store"
)

// Reader serves widget queries from a snapshot of the persisted collection.
type Reader struct {
	events []model.Event
}

// NewReader loads a snapshot through the blob store. Any load or decode
// failure degrades to an empty snapshot.
func NewReader(blob store.Blob, logger *slog.Logger) *Reader {
	r := &Reader{}

	data, err := blob.Load(store.BlobKey)
	if err != nil {
		logger.Warn("widget: load events", "error", err)
		return r
	}
	if data == nil {
		return r
	}

	events, err := store.UnmarshalEvents(data)
	if err != nil {
		logger.Warn("widget: decode events", "error", err)
		return r
	}
	r.events = events
	return r
}

// EventsOn returns the events on the displayed day, sorted by time.
func (r *Reader) EventsOn(day time.Time) []model.Event {
	var out []model.Event
	for _, e := range r.events {
		if grid.SameDay(e.Timestamp, day) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// WeekDays returns the 7 dates of the week containing the displayed day.
func (r *Reader) WeekDays(day time.Time) []time.Time {
	cells := grid.BuildWeekGrid(day)
	days := make([]time.Time, len(cells))
	for i, c := range cells {
		days[i] = c.Date
	}
	return days
}
