package deeplink

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("dalcal://date/2025-07-14")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseRejectsBadLinks(t *testing.T) {
	bad := []string{
		"https://date/2025-07-14",   // wrong scheme
		"dalcal://event/2025-07-14", // wrong host
		"dalcal://date/",            // no date
		"dalcal://date/14-07-2025",  // wrong date layout
		"dalcal://date/2025-13-40",  // impossible date
	}
	for _, raw := range bad {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		}
	}
}
