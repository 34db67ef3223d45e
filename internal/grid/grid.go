// Package grid computes calendar day layouts. All functions are pure and
// operate in the time zone of the reference date.
package grid

import (
	"time"

	"github.com/minsung-kang/dalcal/internal/model"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	first := StartOfMonth(t)
	return first.AddDate(0, 1, -1).Day()
}

// BuildMonthGrid returns the full month layout for ref's month: leading cells
// carrying the trailing day numbers of the previous month, one cell per day of
// the month, and trailing cells from the next month up to a week boundary.
// The result length is always a multiple of 7 between 35 and 42.
func BuildMonthGrid(ref time.Time) []model.DayCell {
	first := StartOfMonth(ref)
	firstWeekday := int(first.Weekday())
	days := DaysInMonth(ref)
	prevDays := DaysInMonth(first.AddDate(0, -1, 0))

	cells := make([]model.DayCell, 0, 42)

	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, model.DayCell{
			Day:     prevDays - firstWeekday + 1 + i,
			Weekday: i,
			InMonth: false,
		})
	}

	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		cells = append(cells, model.DayCell{
			Date:    date,
			Day:     d,
			Weekday: int(date.Weekday()),
			InMonth: true,
		})
	}

	// Pad to the next week boundary with leading days of the next month.
	// A month that ends exactly on Saturday gets no extra row.
	next := 1
	for len(cells)%7 != 0 {
		cells = append(cells, model.DayCell{
			Day:     next,
			Weekday: len(cells) % 7,
			InMonth: false,
		})
		next++
	}

	// Keep a minimum of five rows so short months render with the same frame.
	for len(cells) < 35 {
		cells = append(cells, model.DayCell{
			Day:     next,
			Weekday: len(cells) % 7,
			InMonth: false,
		})
		next++
	}

	return cells
}

// BuildWeekGrid returns the 7 consecutive dates of the Sunday-start week
// containing ref.
func BuildWeekGrid(ref time.Time) []model.DayCell {
	start := StartOfWeek(ref)
	cells := make([]model.DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, model.DayCell{
			Date:    date,
			Day:     date.Day(),
			Weekday: i,
			InMonth: true,
		})
	}
	return cells
}
