// Package ics serializes the event collection to iCalendar form so other
// calendar apps can import it.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/minsung-kang/dalcal/internal/model"
)

const prodID = "-//dalcal//calendar//KO"

// defaultDuration is used for VEVENT DTEND; events carry a single timestamp.
const defaultDuration = time.Hour

// Export renders the collection as an iCalendar document.
func Export(events []model.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s@dalcal", e.ID))
		ve.SetSummary(e.Title)
		ve.SetStartAt(e.Timestamp)
		ve.SetEndAt(e.Timestamp.Add(defaultDuration))
		ve.SetDtStampTime(e.Timestamp)
		if e.Memo != "" {
			ve.SetDescription(e.Memo)
		}
		ve.SetProperty(ical.ComponentProperty(ical.PropertyCategories), string(e.Color))
	}

	return []byte(cal.Serialize()), nil
}
