package domain

import (
	"fmt"
	"time"
)

// History is the ordered session log, most recent first. Index 0 is the only
// session that may still be merged into; the type only exposes Prepend and
// ReplaceHead so the rest of the log is immutable.
type History struct {
	sessions []Session
}

func NewHistory(sessions []Session) History {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		s.TotalMalas = Malas(s.TotalCounts)
		out[i] = s
	}
	return History{sessions: out}
}

func (h History) Len() int { return len(h.sessions) }

func (h History) Head() (Session, bool) {
	if len(h.sessions) == 0 {
		return Session{}, false
	}
	return h.sessions[0], true
}

// Sessions returns a copy of the log.
func (h History) Sessions() []Session {
	out := make([]Session, len(h.sessions))
	copy(out, h.sessions)
	return out
}

func (h History) Prepend(s Session) History {
	out := make([]Session, 0, len(h.sessions)+1)
	out = append(out, s)
	out = append(out, h.sessions...)
	return History{sessions: out}
}

// ReplaceHead swaps index 0. On an empty log it behaves like Prepend.
func (h History) ReplaceHead(s Session) History {
	if len(h.sessions) == 0 {
		return h.Prepend(s)
	}
	out := make([]Session, len(h.sessions))
	copy(out, h.sessions)
	out[0] = s
	return History{sessions: out}
}

func (h History) TotalCounts() int {
	total := 0
	for _, s := range h.sessions {
		total += s.TotalCounts
	}
	return total
}

// Fingerprint changes whenever the log changes. Only the head is ever
// mutated, so length plus head state is enough.
func (h History) Fingerprint() string {
	head, ok := h.Head()
	if !ok {
		return "empty"
	}
	return fmt.Sprintf("%d:%s:%d:%d", len(h.sessions), head.ID, head.TotalCounts, head.Timestamp)
}

// RecordTap merges a tap into the head session when it has the same chant and
// was touched less than MergeWindow ago, otherwise it starts a new session.
// The receiver is never modified.
func (h History) RecordTap(chantName string, now time.Time, newID func() string) (History, bool) {
	if head, ok := h.Head(); ok && head.Mergeable(chantName, now) {
		head.TotalCounts++
		head.TotalMalas = Malas(head.TotalCounts)
		head.Timestamp = now.UnixMilli()
		return h.ReplaceHead(head), false
	}
	return h.Prepend(Session{
		ID:              newID(),
		Timestamp:       now.UnixMilli(),
		ChantName:       chantName,
		TotalCounts:     1,
		TotalMalas:      Malas(1),
		DurationSeconds: 1,
	}), true
}
