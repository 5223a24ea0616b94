package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday June 15 2025, mid-morning.
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"rfc3339", "2025-06-15T22:00:00Z", true},
		{"rfc3339 nano", "2025-06-15T22:00:00.123Z", true},
		{"no zone", "2025-06-15T22:00:00", true},
		{"date only", "2025-06-15", true},
		{"empty", "", false},
		{"garbage", "next friday-ish", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseTimestamp(tc.raw)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestIsTonight_SameCalendarDay(t *testing.T) {
	assert.True(t, IsTonight(testNow, testNow))

	lateTonight := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.True(t, IsTonight(lateTonight, testNow))
}

func TestIsTonight_CalendarDayNotRollingWindow(t *testing.T) {
	// 25 hours ahead crosses into the next calendar day.
	assert.False(t, IsTonight(testNow.Add(25*time.Hour), testNow))

	// 13 hours ahead of a morning "now" is still the same day.
	assert.True(t, IsTonight(testNow.Add(13*time.Hour), testNow))
}

func TestIsPast_StrictCalendarDay(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	assert.True(t, IsPast(yesterday, testNow))

	earlierToday := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	assert.False(t, IsPast(earlierToday, testNow), "earlier hour today is not past")

	assert.False(t, IsPast(testNow.AddDate(0, 0, 1), testNow))
}

func TestWeekendWindow_FromMidweek(t *testing.T) {
	// Wednesday June 11 2025.
	wed := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	start, end := WeekendWindow(wed)

	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestWeekendWindow_FridayAnchorsCurrentWeekend(t *testing.T) {
	// Friday June 13 2025: offset is 0, not 7.
	fri := time.Date(2025, 6, 13, 18, 30, 0, 0, time.UTC)
	start, _ := WeekendWindow(fri)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), start)
}

func TestIsThisWeekend_ClosedBoundaries(t *testing.T) {
	wed := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	friStart := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	sunEnd := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	assert.True(t, IsThisWeekend(friStart, wed), "Friday 00:00:00 is inside")
	assert.True(t, IsThisWeekend(sunEnd, wed), "Sunday 23:59:59 is inside")

	assert.False(t, IsThisWeekend(friStart.Add(-time.Second), wed), "one second before Friday is outside")
	assert.False(t, IsThisWeekend(sunEnd.Add(time.Second), wed), "Monday 00:00:00 is outside")
}

func TestIsThisWeekend_OngoingWeekendStillMatches(t *testing.T) {
	// Checked on Saturday, a Sunday event the same weekend must match.
	sat := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	sunEvening := time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
	assert.True(t, IsThisWeekend(sunEvening, sat))
	assert.True(t, IsThisWeekend(sat, sat))

	// And the weekend after does not.
	nextSat := time.Date(2025, 6, 21, 21, 0, 0, 0, time.UTC)
	assert.False(t, IsThisWeekend(nextSat, sat))
}

func TestRelativeLabel(t *testing.T) {
	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same day", time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC), "Tonight"},
		{"next day", time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), "Tomorrow"},
		{"within week", time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC), "Sat, Jun 21"},
		{"beyond week", time.Date(2025, 7, 4, 20, 0, 0, 0, time.UTC), "Friday, Jul 4, 2025"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeLabel(tc.ts, testNow))
		})
	}
}

func TestRelativeLabel_SeventhDayStillShortForm(t *testing.T) {
	seventh := testNow.AddDate(0, 0, 7)
	got := RelativeLabel(seventh, testNow)
	require.NotEqual(t, "Tonight", got)
	assert.Equal(t, seventh.Format("Mon, Jan 2"), got)
}
