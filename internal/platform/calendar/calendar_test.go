package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japa/internal/platform/calendar"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestWeekStartIsMondayAndSundayLooksBackSixDays(t *testing.T) {
	t.Parallel()
	loc := kolkata(t)

	wednesday := time.Date(2026, 10, 21, 15, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, loc), calendar.WeekStart(wednesday))

	sunday := time.Date(2026, 10, 25, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, loc), calendar.WeekStart(sunday))

	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, loc)
	assert.Equal(t, monday, calendar.WeekStart(monday))
}

func TestWeekEndIsSundayLastMillisecond(t *testing.T) {
	t.Parallel()
	loc := kolkata(t)
	end := calendar.WeekEnd(time.Date(2026, 10, 21, 9, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 10, 25, 23, 59, 59, 999_000_000, loc), end)
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestWeekCrossesMonthAndYearBoundaries(t *testing.T) {
	t.Parallel()
	// Thursday Jan 1 2026 belongs to the week starting Monday Dec 29 2025.
	start := calendar.WeekStart(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), start)
}

func TestMonthAndYearStart(t *testing.T) {
	t.Parallel()
	ts := time.Date(2026, 10, 19, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), calendar.MonthStart(ts))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), calendar.YearStart(ts))
}

func TestDayKeyUsesLocationOfInstant(t *testing.T) {
	t.Parallel()
	loc := kolkata(t)
	// 20:00 UTC is already the next day in Kolkata (+05:30).
	utc := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19", calendar.DayKey(utc))
	assert.Equal(t, "2026-10-20", calendar.DayKey(utc.In(loc)))
	assert.Equal(t, "Oct 20", calendar.DayLabel(utc.In(loc)))
}

func TestBoundsAndContains(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

	start, end, err := calendar.Bounds(calendar.Month, anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999_000_000, time.UTC), end)

	assert.True(t, calendar.Contains(calendar.Day, anchor, time.Date(2026, 2, 14, 23, 59, 59, 0, time.UTC)))
	assert.False(t, calendar.Contains(calendar.Day, anchor, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, calendar.Contains(calendar.Year, anchor, time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, calendar.Contains(calendar.Week, anchor, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)))

	_, _, err = calendar.Bounds(calendar.Bucket("decade"), anchor)
	assert.Error(t, err)
}

func TestWeekdayIndex(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, calendar.WeekdayIndex(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, calendar.WeekdayIndex(time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)))
}
