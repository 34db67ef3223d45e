package model

import "time"

// ViewMode selects the calendar layout.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

// DayCell is one grid position in a rendered calendar. Padding cells from the
// adjacent month have a zero Date but keep their true day number and weekday.
type DayCell struct {
	Date    time.Time `json:"date,omitzero"`
	Day     int       `json:"day"`
	Weekday int       `json:"weekday"` // 0=Sunday .. 6=Saturday
	InMonth bool      `json:"in_month"`
}
