package model

import "time"

// Color is the closed palette for event tags.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
)

// Colors lists every valid palette entry.
var Colors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorPink}

// ParseColor maps a raw tag to a palette entry, falling back to blue for
// anything unrecognized (including values persisted by older builds).
func ParseColor(s string) Color {
	for _, c := range Colors {
		if s == string(c) {
			return c
		}
	}
	return ColorBlue
}

// Icons lists the icon tokens offered by the event editor.
var Icons = []string{
	"calendar", "star", "heart", "bolt",
	"flag", "bell", "tag", "briefcase",
	"house", "person", "cart", "airplane",
	"car", "food", "game", "music",
}

const DefaultIcon = "calendar"

// ParseIcon maps a raw token to a known icon, defaulting to "calendar".
func ParseIcon(s string) string {
	for _, ic := range Icons {
		if s == ic {
			return ic
		}
	}
	return DefaultIcon
}

// ReminderLead is the lead time of a secondary alert, in minutes before the
// event's on-time alert. Zero means no lead-time alert.
type ReminderLead int

const (
	ReminderNone  ReminderLead = 0
	Reminder5Min  ReminderLead = 5
	Reminder10Min ReminderLead = 10
	Reminder30Min ReminderLead = 30
)

// ParseReminderLead maps a raw minute count to a supported lead time,
// defaulting to none.
func ParseReminderLead(minutes int) ReminderLead {
	switch ReminderLead(minutes) {
	case Reminder5Min, Reminder10Min, Reminder30Min:
		return ReminderLead(minutes)
	}
	return ReminderNone
}

// Event is a single calendar entry. The ID is assigned at creation and stable
// for the event's lifetime.
type Event struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Timestamp           time.Time    `json:"timestamp"`
	Memo                string       `json:"memo"`
	Icon                string       `json:"icon"`
	Color               Color        `json:"color"`
	NotificationEnabled bool         `json:"notification_enabled"`
	ReminderLead        ReminderLead `json:"reminder_lead"`
}
