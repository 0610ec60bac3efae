package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japa/internal/modules/goal/domain"
)

// Monday 19 October 2026, mid morning.
var now = time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

func entry(at time.Time, counts int) domain.Entry {
	return domain.Entry{At: at, ChantName: "Ram", Counts: counts}
}

func TestEmptyHistoryDailyProgress(t *testing.T) {
	t.Parallel()
	p := domain.ComputeProgress(nil, domain.GoalConfig{Type: domain.GoalDaily, Value: 1000}, domain.RangeDaily, now)
	assert.Equal(t, domain.Progress{Range: domain.RangeDaily, Current: 0, Target: 1000, Percent: 0}, p)
}

func TestSameDaySessionsSumAcrossChants(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{At: now.Add(-time.Hour), ChantName: "Ram", Counts: 50},
		{At: now.Add(-3 * time.Hour), ChantName: "Radha", Counts: 58},
		{At: now.Add(-24 * time.Hour), ChantName: "Ram", Counts: 500},
	}
	p := domain.ComputeProgress(entries, domain.DefaultGoal(), domain.RangeDaily, now)
	assert.Equal(t, 108, p.Current)
	assert.InDelta(t, 10.8, p.Percent, 1e-9)
}

func TestTargetScaling(t *testing.T) {
	t.Parallel()
	weekly := domain.GoalConfig{Type: domain.GoalWeekly, Value: 700}
	assert.Equal(t, 700, weekly.Target(domain.RangeDaily))
	assert.Equal(t, 700, weekly.Target(domain.RangeWeekly))
	assert.Equal(t, 21000, weekly.Target(domain.RangeMonthly))
	assert.Equal(t, 255500, weekly.Target(domain.RangeYearly))

	daily := domain.GoalConfig{Type: domain.GoalDaily, Value: 100}
	assert.Equal(t, 700, daily.Target(domain.RangeWeekly))
	assert.Equal(t, 3000, daily.Target(domain.RangeMonthly))
	assert.Equal(t, 36500, daily.Target(domain.RangeYearly))

	monthly := domain.GoalConfig{Type: domain.GoalMonthly, Value: 9000}
	assert.Equal(t, 9000, monthly.Target(domain.RangeMonthly))
	yearly := domain.GoalConfig{Type: domain.GoalYearly, Value: 1}
	assert.Equal(t, 1, yearly.Target(domain.RangeYearly))
}

func TestProgressIsUnclampedAndZeroTargetIsZero(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{entry(now, 1200)}
	p := domain.ComputeProgress(entries, domain.GoalConfig{Type: domain.GoalDaily, Value: 1000}, domain.RangeDaily, now)
	assert.InDelta(t, 120.0, p.Percent, 1e-9)
	assert.Equal(t, 100.0, p.Clamped())

	p = domain.ComputeProgress(entries, domain.GoalConfig{Type: domain.GoalNone, Value: 0}, domain.RangeDaily, now)
	assert.Zero(t, p.Percent)
	assert.Zero(t, p.Target)
}

func TestWeeklyBucketUsesMondayStart(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2026, 10, 25, 23, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		entry(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), 1),   // Monday start
		entry(time.Date(2026, 10, 25, 23, 59, 0, 0, time.UTC), 2), // Sunday end
		entry(time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), 4), // previous Sunday
	}
	p := domain.ComputeProgress(entries, domain.DefaultGoal(), domain.RangeWeekly, sunday)
	assert.Equal(t, 3, p.Current)

	series := domain.BucketSeries(entries, domain.RangeWeekly, sunday)
	require.Len(t, series, 7)
	assert.Equal(t, domain.Point{Label: "Mon", Count: 1}, series[0])
	assert.Equal(t, domain.Point{Label: "Sun", Count: 2}, series[6])
}

func TestDailySeriesCoversLastSevenDays(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		entry(now, 5),
		entry(now.AddDate(0, 0, -6), 7),
		entry(now.AddDate(0, 0, -7), 100),
		entry(now.AddDate(-1, 0, 0), 1000), // same label a year ago
	}
	series := domain.BucketSeries(entries, domain.RangeDaily, now)
	require.Len(t, series, 7)
	assert.Equal(t, domain.Point{Label: "Oct 13", Count: 7}, series[0])
	assert.Equal(t, domain.Point{Label: "Oct 19", Count: 5}, series[6])
}

func TestMonthlyAndYearlySeriesDropOutOfWindow(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		entry(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), 1),
		entry(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 2),
		entry(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 4),
		entry(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 8),
	}
	monthly := domain.BucketSeries(entries, domain.RangeMonthly, now)
	require.Len(t, monthly, 12)
	assert.Equal(t, domain.Point{Label: "Jan", Count: 1}, monthly[0])
	assert.Equal(t, domain.Point{Label: "Dec", Count: 2}, monthly[11])

	yearly := domain.BucketSeries(entries, domain.RangeYearly, now)
	labels := make([]string, 0, len(yearly))
	total := 0
	for _, p := range yearly {
		labels = append(labels, p.Label)
		total += p.Count
	}
	assert.Equal(t, []string{"2024", "2025", "2026", "2027", "2028"}, labels)
	assert.Equal(t, 7, total, "2023 is outside the window")
}

func TestSeriesAgreesWithProgressInsideWindow(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{entry(now, 3), entry(now.Add(-2*time.Hour), 9)}
	for _, r := range domain.Ranges {
		if r == domain.RangeDaily {
			continue // the daily series spans seven days, progress only today
		}
		sum := 0
		for _, p := range domain.BucketSeries(entries, r, now) {
			sum += p.Count
		}
		assert.Equal(t, domain.ComputeProgress(entries, domain.DefaultGoal(), r, now).Current, sum, string(r))
	}
	daily := 0
	for _, p := range domain.BucketSeries(entries, domain.RangeDaily, now) {
		daily += p.Count
	}
	assert.Equal(t, 12, daily)
}

func TestTodayForChantAndLifetime(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{At: now, ChantName: "Ram", Counts: 54},
		{At: now, ChantName: "Radha", Counts: 10},
		{At: now.AddDate(0, 0, -1), ChantName: "Ram", Counts: 54},
	}
	assert.Equal(t, 54, domain.TodayForChant(entries, "Ram", now))
	assert.Equal(t, 118, domain.Lifetime(entries))
}

func TestParseAndStep(t *testing.T) {
	t.Parallel()
	gt, err := domain.ParseGoalType(" Weekly ")
	require.NoError(t, err)
	assert.Equal(t, domain.GoalWeekly, gt)
	_, err = domain.ParseGoalType("hourly")
	assert.Error(t, err)
	_, err = domain.ParseRange("fortnightly")
	assert.Error(t, err)

	g := domain.GoalConfig{Type: domain.GoalDaily, Value: 50}
	assert.Equal(t, 0, g.Step(-domain.GoalStep).Value)
	assert.Equal(t, 150, g.Step(domain.GoalStep).Value)
}
