package temporal

import "time"

// All classifiers take an explicit "now" so results are deterministic under
// test; nothing in this package reads the wall clock.

// acceptedLayouts are the timestamp shapes the content API has been seen to
// emit, tried in order.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp from the content API.
// Returns ok=false for empty or unparsable input; callers treat that as
// "unknown" and keep the record out of temporal buckets without dropping it.
func ParseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDay reports whether a and b fall on the same calendar day,
// each interpreted in its own location.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsTonight reports whether ts falls on the same calendar day as now.
// This is a calendar-day test, not a rolling 24-hour window.
func IsTonight(ts, now time.Time) bool {
	return SameCalendarDay(ts, now)
}

// IsPast reports whether ts falls on a calendar day strictly before now's.
func IsPast(ts, now time.Time) bool {
	return StartOfDay(ts).Before(StartOfDay(now))
}

// WeekendWindow returns the closed interval [Friday 00:00:00, Sunday
// 23:59:59.999] of the upcoming-or-current weekend relative to now.
//
// The Friday offset is (Friday − weekday(now) + 7) mod 7, so a Friday
// "now" yields offset 0 and the current weekend, never the next one.
func WeekendWindow(now time.Time) (start, end time.Time) {
	daysUntilFriday := (int(time.Friday) - int(now.Weekday()) + 7) % 7
	start = StartOfDay(now).AddDate(0, 0, daysUntilFriday)
	end = start.AddDate(0, 0, 3).Add(-time.Millisecond)
	return start, end
}

// IsThisWeekend reports whether ts falls inside the upcoming-or-current
// weekend window relative to now. When now is already Saturday or Sunday,
// the window anchored on the weekend's own Friday is used so the ongoing
// weekend still matches.
func IsThisWeekend(ts, now time.Time) bool {
	anchor := now
	// Roll Saturday/Sunday back to their own Friday so the offset lands on
	// the ongoing weekend instead of the next one.
	switch now.Weekday() {
	case time.Saturday:
		anchor = now.AddDate(0, 0, -1)
	case time.Sunday:
		anchor = now.AddDate(0, 0, -2)
	}
	start, end := WeekendWindow(anchor)
	return !ts.Before(start) && !ts.After(end)
}

// RelativeLabel renders a human label for ts relative to now: "Tonight",
// "Tomorrow", a short weekday form within the next week, or a long form
// with the weekday spelled out beyond that.
func RelativeLabel(ts, now time.Time) string {
	if SameCalendarDay(ts, now) {
		return "Tonight"
	}
	if SameCalendarDay(ts, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	if withinNextDays(ts, now, 7) {
		return ts.Format("Mon, Jan 2")
	}
	return ts.Format("Monday, Jan 2, 2006")
}

// withinNextDays reports whether ts falls on a calendar day within the next
// n days after now (exclusive of today, inclusive of day n).
func withinNextDays(ts, now time.Time, n int) bool {
	day := StartOfDay(ts)
	return day.After(StartOfDay(now)) && !day.After(StartOfDay(now).AddDate(0, 0, n))
}
