// Package deeplink parses widget invocation URLs of the form
// dalcal://date/YYYY-MM-DD.
package deeplink

import (
	"fmt"
	"net/url"
	"time"
)

// Scheme is the URL scheme registered by the app.
const Scheme = "dalcal"

// Parse extracts the target date from a deep link. The date is returned at
// midnight in the local time zone.
func Parse(raw string) (time.Time, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deep link: %w", err)
	}
	if u.Scheme != Scheme {
		return time.Time{}, fmt.Errorf("unexpected scheme %q", u.Scheme)
	}
	if u.Host != "date" {
		return time.Time{}, fmt.Errorf("unexpected deep link host %q", u.Host)
	}

	if len(u.Path) < 2 {
		return time.Time{}, fmt.Errorf("deep link %q has no date", raw)
	}
	d, err := time.ParseInLocation("2006-01-02", u.Path[1:], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deep link date: %w", err)
	}
	return d, nil
}
