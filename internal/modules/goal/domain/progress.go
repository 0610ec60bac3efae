package domain

import (
	"fmt"
	"time"

	"japa/internal/platform/calendar"
)

// Entry is the slice of a session the calculator needs.
type Entry struct {
	At        time.Time
	ChantName string
	Counts    int
}

// Progress keeps Percent unclamped so over-achievement stays visible.
type Progress struct {
	Range   Range
	Current int
	Target  int
	Percent float64
}

func (p Progress) Clamped() float64 {
	switch {
	case p.Percent < 0:
		return 0
	case p.Percent > 100:
		return 100
	default:
		return p.Percent
	}
}

func ComputeProgress(entries []Entry, goal GoalConfig, r Range, now time.Time) Progress {
	current := 0
	for _, e := range entries {
		if calendar.Contains(r.Bucket(), now, e.At) {
			current += e.Counts
		}
	}
	target := goal.Target(r)
	percent := 0.0
	if target > 0 {
		percent = float64(current) / float64(target) * 100
	}
	return Progress{Range: r, Current: current, Target: target, Percent: percent}
}

type Point struct {
	Label string
	Count int
}

// BucketSeries builds the fixed chart slots for r around now. Entries whose
// slot is not in the window are dropped.
func BucketSeries(entries []Entry, r Range, now time.Time) []Point {
	loc := now.Location()
	switch r {
	case RangeWeekly:
		points := labelled(calendar.WeekdayLabels[:])
		for _, e := range entries {
			if calendar.Contains(calendar.Week, now, e.At) {
				points[calendar.WeekdayIndex(e.At.In(loc))].Count += e.Counts
			}
		}
		return points
	case RangeMonthly:
		points := labelled(calendar.MonthLabels[:])
		for _, e := range entries {
			at := e.At.In(loc)
			if at.Year() == now.Year() {
				points[int(at.Month())-1].Count += e.Counts
			}
		}
		return points
	case RangeYearly:
		first := now.Year() - 2
		points := make([]Point, 5)
		for i := range points {
			points[i].Label = fmt.Sprintf("%d", first+i)
		}
		for _, e := range entries {
			if i := e.At.In(loc).Year() - first; i >= 0 && i < len(points) {
				points[i].Count += e.Counts
			}
		}
		return points
	default:
		points := make([]Point, 7)
		slots := make(map[string]int, 7)
		today := calendar.DayStart(now)
		for i := range points {
			day := today.AddDate(0, 0, i-6)
			points[i].Label = calendar.DayLabel(day)
			slots[calendar.DayKey(day)] = i
		}
		for _, e := range entries {
			if i, ok := slots[calendar.DayKey(e.At.In(loc))]; ok {
				points[i].Count += e.Counts
			}
		}
		return points
	}
}

func labelled(labels []string) []Point {
	points := make([]Point, len(labels))
	for i, l := range labels {
		points[i].Label = l
	}
	return points
}

// TodayForChant sums today's counts recorded under chantName.
func TodayForChant(entries []Entry, chantName string, now time.Time) int {
	total := 0
	for _, e := range entries {
		if e.ChantName == chantName && calendar.Contains(calendar.Day, now, e.At) {
			total += e.Counts
		}
	}
	return total
}

func Lifetime(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Counts
	}
	return total
}
