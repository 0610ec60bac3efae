package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// BeadsPerMala is one full rosary.
	BeadsPerMala  = 108
	MergeWindow   = 5 * time.Minute
	SchemaVersion = 1
)

var ErrMalformedHistory = errors.New("malformed history")

// Session is one contiguous burst of chanting of a single mantra. Timestamp
// is the last update in epoch milliseconds.
type Session struct {
	ID              string  `json:"id"`
	Timestamp       int64   `json:"timestamp"`
	ChantName       string  `json:"chantName"`
	TotalCounts     int     `json:"totalCounts"`
	TotalMalas      float64 `json:"totalMalas"`
	DurationSeconds int     `json:"durationSeconds"`
}

func Malas(counts int) float64 {
	return float64(counts) / BeadsPerMala
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if s.TotalCounts < 0 {
		return fmt.Errorf("session %s: negative count %d", s.ID, s.TotalCounts)
	}
	return nil
}

func (s Session) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(s.Timestamp).In(loc)
}

// Mergeable reports whether a tap of chantName at now extends s.
func (s Session) Mergeable(chantName string, now time.Time) bool {
	return s.ChantName == chantName && now.UnixMilli()-s.Timestamp < MergeWindow.Milliseconds()
}

// Snapshot is what a HistoryStore hands back on load: the surviving records
// and how many were discarded as malformed.
type Snapshot struct {
	Sessions []Session
	Dropped  int
}
