package store

import (
	"encoding/json"
	"fmt"

	"github.com/minsung-kang/dalcal/internal/model"
)

// MarshalEvents serializes the collection for the blob store.
func MarshalEvents(events []model.Event) ([]byte, error) {
	if events == nil {
		events = []model.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("marshal events: %w", err)
	}
	return data, nil
}

// UnmarshalEvents decodes a persisted collection. Unknown color and icon tags
// from older builds are normalized to their defaults.
func UnmarshalEvents(data []byte) ([]model.Event, error) {
	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}
	for i := range events {
		events[i].Color = model.ParseColor(string(events[i].Color))
		events[i].Icon = model.ParseIcon(events[i].Icon)
		events[i].ReminderLead = model.ParseReminderLead(int(events[i].ReminderLead))
	}
	return events, nil
}
