package domain

import (
	"sort"
	"time"

	"japa/internal/platform/calendar"
)

const (
	JournalBlockStart = "<!-- japa:sessions:start -->"
	JournalBlockEnd   = "<!-- japa:sessions:end -->"
)

// DayJournal is the export view of every session on one calendar day.
type DayJournal struct {
	Date     time.Time
	Sessions []Session
}

func (d DayJournal) TotalCounts() int {
	total := 0
	for _, s := range d.Sessions {
		total += s.TotalCounts
	}
	return total
}

// GroupByDay buckets sessions by local calendar day, oldest day first.
// Sessions inside a day keep their log order.
func GroupByDay(sessions []Session, loc *time.Location) []DayJournal {
	index := map[string]int{}
	days := []DayJournal{}
	for _, s := range sessions {
		ts := s.Time(loc)
		key := calendar.DayKey(ts)
		i, ok := index[key]
		if !ok {
			days = append(days, DayJournal{Date: calendar.DayStart(ts)})
			i = len(days) - 1
			index[key] = i
		}
		days[i].Sessions = append(days[i].Sessions, s)
	}
	sort.SliceStable(days, func(a, b int) bool { return days[a].Date.Before(days[b].Date) })
	return days
}
