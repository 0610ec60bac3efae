// Package calendar maps instants to the calendar buckets used for
// aggregation. Every function works in the location carried by its argument.
package calendar

import (
	"fmt"
	"time"
)

type Bucket string

const (
	Day   Bucket = "day"
	Week  Bucket = "week"
	Month Bucket = "month"
	Year  Bucket = "year"
)

// WeekdayLabels are ordered Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const lastMilli = 999 * int(time.Millisecond)

// DayKey identifies the calendar day containing t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayLabel is the short chart label for the day containing t, e.g. "Oct 19".
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}

func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
func WeekdayIndex(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 6
	}
	return int(t.Weekday()) - 1
}

// WeekStart returns Monday 00:00:00.000 of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-WeekdayIndex(t), 0, 0, 0, 0, t.Location())
}

// WeekEnd returns Sunday 23:59:59.999 of the ISO week containing t.
func WeekEnd(t time.Time) time.Time {
	y, m, d := WeekStart(t).Date()
	return time.Date(y, m, d+6, 23, 59, 59, lastMilli, t.Location())
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// Bounds returns the first and last millisecond of the bucket containing t.
func Bounds(b Bucket, t time.Time) (time.Time, time.Time, error) {
	switch b {
	case Day:
		start := DayStart(t)
		return start, start.AddDate(0, 0, 1).Add(-time.Millisecond), nil
	case Week:
		return WeekStart(t), WeekEnd(t), nil
	case Month:
		start := MonthStart(t)
		return start, start.AddDate(0, 1, 0).Add(-time.Millisecond), nil
	case Year:
		start := YearStart(t)
		return start, start.AddDate(1, 0, 0).Add(-time.Millisecond), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown bucket %q", string(b))
	}
}

// Contains reports whether ts falls inside the bucket that contains anchor.
func Contains(b Bucket, anchor, ts time.Time) bool {
	start, end, err := Bounds(b, anchor)
	if err != nil {
		return false
	}
	ts = ts.In(anchor.Location())
	return !ts.Before(start) && !ts.After(end)
}

// FromMillis converts epoch milliseconds to an instant in loc.
func FromMillis(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}
