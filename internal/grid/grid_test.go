package grid

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGridLength(t *testing.T) {
	refs := []time.Time{
		date(2025, time.January, 15),
		date(2025, time.February, 1),
		date(2024, time.February, 29), // leap year
		date(2025, time.August, 31),
		date(2026, time.December, 25),
		date(2015, time.February, 10), // 28 days starting on Sunday
	}

	for _, ref := range refs {
		cells := BuildMonthGrid(ref)
		if len(cells)%7 != 0 {
			t.Errorf("%s: len = %d, want multiple of 7", ref.Format("2006-01"), len(cells))
		}
		if len(cells) < 35 || len(cells) > 42 {
			t.Errorf("%s: len = %d, want 35..42", ref.Format("2006-01"), len(cells))
		}
	}
}

func TestBuildMonthGridCurrentMonthDays(t *testing.T) {
	ref := date(2025, time.March, 12)
	cells := BuildMonthGrid(ref)

	want := 1
	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		if c.Day != want {
			t.Fatalf("day = %d, want %d", c.Day, want)
		}
		if c.Date.IsZero() {
			t.Fatalf("day %d has zero date", c.Day)
		}
		if c.Date.Month() != time.March || c.Date.Year() != 2025 {
			t.Fatalf("day %d date = %v, want March 2025", c.Day, c.Date)
		}
		if int(c.Date.Weekday()) != c.Weekday {
			t.Errorf("day %d weekday = %d, want %d", c.Day, c.Weekday, c.Date.Weekday())
		}
		want++
	}
	if want-1 != 31 {
		t.Errorf("current month days = %d, want 31", want-1)
	}
}

func TestBuildMonthGridLeadingPadding(t *testing.T) {
	// March 2025 starts on a Saturday; the six leading cells carry
	// February 23..28.
	cells := BuildMonthGrid(date(2025, time.March, 1))

	leading := 0
	for _, c := range cells {
		if c.InMonth {
			break
		}
		leading++
	}
	if leading != 6 {
		t.Fatalf("leading padding = %d, want 6", leading)
	}
	for i := 0; i < leading; i++ {
		if cells[i].Day != 23+i {
			t.Errorf("cell %d day = %d, want %d", i, cells[i].Day, 23+i)
		}
		if !cells[i].Date.IsZero() {
			t.Errorf("cell %d should have zero date", i)
		}
		if cells[i].Weekday != i {
			t.Errorf("cell %d weekday = %d, want %d", i, cells[i].Weekday, i)
		}
	}
}

func TestBuildMonthGridNoRedundantRow(t *testing.T) {
	// August 2026: starts Saturday, 31 days, 37 cells -> pads to 42.
	if n := len(BuildMonthGrid(date(2026, time.August, 1))); n != 42 {
		t.Errorf("August 2026 len = %d, want 42", n)
	}
	// November 2026: starts Sunday, 30 days -> exactly 35, no extra row.
	if n := len(BuildMonthGrid(date(2026, time.November, 15))); n != 35 {
		t.Errorf("November 2026 len = %d, want 35", n)
	}
}

func TestBuildMonthGridLeapFebruary(t *testing.T) {
	count := func(ref time.Time) int {
		n := 0
		for _, c := range BuildMonthGrid(ref) {
			if c.InMonth {
				n++
			}
		}
		return n
	}
	if n := count(date(2024, time.February, 1)); n != 29 {
		t.Errorf("February 2024 days = %d, want 29", n)
	}
	if n := count(date(2025, time.February, 1)); n != 28 {
		t.Errorf("February 2025 days = %d, want 28", n)
	}
}

func TestBuildMonthGridYearBoundary(t *testing.T) {
	dec := BuildMonthGrid(date(2025, time.December, 31))
	for _, c := range dec {
		if c.InMonth && c.Date.Year() != 2025 {
			t.Errorf("December cell year = %d, want 2025", c.Date.Year())
		}
	}
	jan := BuildMonthGrid(date(2026, time.January, 1))
	for _, c := range jan {
		if c.InMonth && c.Date.Year() != 2026 {
			t.Errorf("January cell year = %d, want 2026", c.Date.Year())
		}
	}
}

func TestBuildWeekGrid(t *testing.T) {
	// 2025-06-18 is a Wednesday; its week starts Sunday 2025-06-15.
	cells := BuildWeekGrid(date(2025, time.June, 18))
	if len(cells) != 7 {
		t.Fatalf("len = %d, want 7", len(cells))
	}
	if cells[0].Date.Weekday() != time.Sunday {
		t.Errorf("week starts on %v, want Sunday", cells[0].Date.Weekday())
	}
	for i, c := range cells {
		want := date(2025, time.June, 15+i)
		if !c.Date.Equal(want) {
			t.Errorf("cell %d = %v, want %v", i, c.Date, want)
		}
		if c.Weekday != i {
			t.Errorf("cell %d weekday = %d, want %d", i, c.Weekday, i)
		}
	}
}

func TestBuildWeekGridAcrossMonthBoundary(t *testing.T) {
	// 2025-12-30 is a Tuesday; its week runs Dec 28 .. Jan 3.
	cells := BuildWeekGrid(date(2025, time.December, 30))
	if got := cells[0].Date; !got.Equal(date(2025, time.December, 28)) {
		t.Errorf("week start = %v, want 2025-12-28", got)
	}
	if got := cells[6].Date; !got.Equal(date(2026, time.January, 3)) {
		t.Errorf("week end = %v, want 2026-01-03", got)
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := date(2025, time.June, 15)
	if got := StartOfWeek(sunday); !got.Equal(sunday) {
		t.Errorf("StartOfWeek(sunday) = %v, want %v", got, sunday)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.May, 4, 9, 30, 0, 0, time.UTC)
	b := time.Date(2025, time.May, 4, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(b, c) {
		t.Error("expected different days")
	}
}
