// Package holiday provides a static lookup of Korean public holidays.
//
// Lunar-calendar holidays shift every year and are maintained by hand for a
// bounded range of years; dates outside that range simply report no holiday.
package holiday

import (
	"fmt"
	"time"
)

// fixed holidays recur on the same month-day every year, keyed "MM-DD".
var fixed = map[string]string{
	"01-01": "신정",
	"03-01": "삼일절",
	"05-05": "어린이날",
	"06-06": "현충일",
	"08-15": "광복절",
	"10-03": "개천절",
	"10-09": "한글날",
	"12-25": "크리스마스",
}

// byDate holds year-specific holidays, keyed "YYYY-MM-DD". Entries here take
// precedence over the fixed table. Maintained for 2024-2027.
var byDate = map[string]string{
	// 2024
	"2024-02-09": "설날 전날", "2024-02-10": "설날", "2024-02-11": "설날 다음날",
	"2024-05-06": "대체공휴일", "2024-05-15": "부처님오신날",
	"2024-09-16": "추석 전날", "2024-09-17": "추석", "2024-09-18": "추석 다음날",
	// 2025
	"2025-01-28": "설날 전날", "2025-01-29": "설날", "2025-01-30": "설날 다음날",
	"2025-03-03": "대체공휴일", "2025-05-06": "부처님오신날",
	"2025-10-05": "추석 전날", "2025-10-06": "추석", "2025-10-07": "추석 다음날", "2025-10-08": "대체공휴일",
	// 2026
	"2026-02-16": "설날 전날", "2026-02-17": "설날", "2026-02-18": "설날 다음날",
	"2026-05-25": "부처님오신날",
	"2026-09-24": "추석 전날", "2026-09-25": "추석", "2026-09-26": "추석 다음날",
	// 2027
	"2027-02-05": "설날 전날", "2027-02-06": "설날", "2027-02-07": "설날 다음날",
	"2027-05-13": "부처님오신날",
	"2027-10-14": "추석 전날", "2027-10-15": "추석", "2027-10-16": "추석 다음날",
}

// Lookup returns the holiday name for the given date, if any. Year-specific
// entries win over fixed month-day entries.
func Lookup(t time.Time) (string, bool) {
	full := fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	if name, ok := byDate[full]; ok {
		return name, true
	}
	mmdd := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	if name, ok := fixed[mmdd]; ok {
		return name, true
	}
	return "", false
}

// IsHoliday reports whether the date has any holiday entry.
func IsHoliday(t time.Time) bool {
	_, ok := Lookup(t)
	return ok
}
