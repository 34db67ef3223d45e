// Package controller owns calendar navigation state and composes the grid,
// event store, and holiday table into render-ready view models. Nothing here
// is reactive: callers re-request a view model after each mutation.
package controller

import (
	"sort"
	"time"

	"github.com/minsung-kang/dalcal/internal/deeplink"
	"github.com/minsung-kang/dalcal/internal/grid"
	"github.com/minsung-kang/dalcal/internal/holiday"
	"github.com/minsung-kang/dalcal/internal/model"
	"github.com/minsung-kang/dalcal/internal/store"
)

// NavigationState is the currently displayed period and selection.
type NavigationState struct {
	Anchor   time.Time      `json:"anchor"`
	Selected time.Time      `json:"selected"`
	Mode     model.ViewMode `json:"mode"`
}

// DayView is one grid cell joined with its display flags and events.
type DayView struct {
	model.DayCell
	Holiday    string        `json:"holiday,omitempty"`
	IsToday    bool          `json:"is_today"`
	IsSelected bool          `json:"is_selected"`
	Events     []model.Event `json:"events"`
}

// CalendarView is the full render model for the displayed period.
type CalendarView struct {
	State NavigationState `json:"state"`
	Days  []DayView       `json:"days"`
}

// Controller mediates between navigation input and the event store.
// Methods are not safe for concurrent use; the HTTP layer serializes access.
type Controller struct {
	events *store.EventStore
	nav    NavigationState
	now    func() time.Time
}

// New creates a controller anchored at the current date in month mode.
func New(events *store.EventStore) *Controller {
	return newWithClock(events, time.Now)
}

func newWithClock(events *store.EventStore, now func() time.Time) *Controller {
	today := grid.StartOfDay(now())
	return &Controller{
		events: events,
		nav: NavigationState{
			Anchor:   today,
			Selected: today,
			Mode:     model.ViewMonth,
		},
		now: now,
	}
}

// State returns the current navigation state.
func (c *Controller) State() NavigationState {
	return c.nav
}

// NextPeriod advances the anchor by one month or week depending on the view
// mode. The selection follows the period, clamped to the last valid day of
// the landing month (selecting the 31st and moving into a 30-day month lands
// on the 30th).
func (c *Controller) NextPeriod() {
	c.shiftPeriod(1)
}

// PreviousPeriod retreats the anchor by one month or week.
func (c *Controller) PreviousPeriod() {
	c.shiftPeriod(-1)
}

func (c *Controller) shiftPeriod(delta int) {
	switch c.nav.Mode {
	case model.ViewWeek:
		c.nav.Anchor = c.nav.Anchor.AddDate(0, 0, 7*delta)
		c.nav.Selected = c.nav.Selected.AddDate(0, 0, 7*delta)
	default:
		anchor := grid.StartOfMonth(c.nav.Anchor).AddDate(0, delta, 0)
		c.nav.Anchor = anchor
		day := c.nav.Selected.Day()
		if last := grid.DaysInMonth(anchor); day > last {
			day = last
		}
		c.nav.Selected = time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
	}
}

// GoToToday resets both anchor and selection to the current date.
func (c *Controller) GoToToday() {
	today := grid.StartOfDay(c.now())
	c.nav.Anchor = today
	c.nav.Selected = today
}

// SelectDate sets the selection. The anchor moves only when d falls outside
// the currently displayed period.
func (c *Controller) SelectDate(d time.Time) {
	d = grid.StartOfDay(d)
	c.nav.Selected = d
	if !c.inDisplayedPeriod(d) {
		c.nav.Anchor = d
	}
}

// SetViewMode switches between month and week layout. Anchor and selection
// are unaffected. Unknown modes are ignored.
func (c *Controller) SetViewMode(mode model.ViewMode) {
	if mode == model.ViewMonth || mode == model.ViewWeek {
		c.nav.Mode = mode
	}
}

// OpenDeepLink parses a dalcal://date/YYYY-MM-DD link and applies the date
// as the selection.
func (c *Controller) OpenDeepLink(raw string) error {
	d, err := deeplink.Parse(raw)
	if err != nil {
		return err
	}
	c.SelectDate(d)
	return nil
}

func (c *Controller) inDisplayedPeriod(d time.Time) bool {
	switch c.nav.Mode {
	case model.ViewWeek:
		start := grid.StartOfWeek(c.nav.Anchor)
		return !d.Before(start) && d.Before(start.AddDate(0, 0, 7))
	default:
		return d.Year() == c.nav.Anchor.Year() && d.Month() == c.nav.Anchor.Month()
	}
}

// View returns the render model for the current mode.
func (c *Controller) View() CalendarView {
	if c.nav.Mode == model.ViewWeek {
		return c.WeekView()
	}
	return c.MonthView()
}

// MonthView joins the month grid with events, holidays, and display flags.
func (c *Controller) MonthView() CalendarView {
	return CalendarView{
		State: c.nav,
		Days:  c.decorate(grid.BuildMonthGrid(c.nav.Anchor)),
	}
}

// WeekView joins the week grid with events, holidays, and display flags.
func (c *Controller) WeekView() CalendarView {
	return CalendarView{
		State: c.nav,
		Days:  c.decorate(grid.BuildWeekGrid(c.nav.Anchor)),
	}
}

func (c *Controller) decorate(cells []model.DayCell) []DayView {
	today := c.now()

	days := make([]DayView, 0, len(cells))
	for _, cell := range cells {
		dv := DayView{DayCell: cell, Events: []model.Event{}}
		if !cell.Date.IsZero() {
			if name, ok := holiday.Lookup(cell.Date); ok {
				dv.Holiday = name
			}
			dv.IsToday = grid.SameDay(cell.Date, today)
			dv.IsSelected = grid.SameDay(cell.Date, c.nav.Selected)
			dv.Events = sortByTime(c.events.EventsForDay(cell.Date))
		}
		days = append(days, dv)
	}
	return days
}

// sortByTime orders events ascending by timestamp for display.
func sortByTime(events []model.Event) []model.Event {
	if events == nil {
		return []model.Event{}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}
