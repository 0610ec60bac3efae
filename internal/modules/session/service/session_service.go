package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"japa/internal/modules/session/domain"
	sessionout "japa/internal/modules/session/port/out"
	"japa/internal/platform/clock"
	"japa/internal/platform/id"
)

// SessionService owns the in-memory session log for the process lifetime. It
// loads once, and writes the full log back after every change. While the
// store cannot be read, taps are kept in memory and nothing is written, so an
// unreadable store is never overwritten.
type SessionService struct {
	clock   clock.Clock
	idGen   id.Generator
	store   sessionout.HistoryStore
	journal sessionout.JournalWriter
	log     zerolog.Logger

	mu      sync.Mutex
	loaded  bool
	history domain.History
	pending []pendingTap
}

// pendingTap is a tap recorded before the store could be read. It is replayed
// onto the stored log once a load succeeds.
type pendingTap struct {
	chantName string
	at        time.Time
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.HistoryStore, journal sessionout.JournalWriter, log zerolog.Logger) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store, journal: journal, log: log}
}

// RecordTap applies one tap at the current instant and persists the result.
func (s *SessionService) RecordTap(ctx context.Context, chantName string) (domain.Session, bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	now := s.clock.Now()
	next, created := s.history.RecordTap(chantName, now, s.idGen.New)
	s.history = next
	if s.loaded {
		s.persist(ctx)
	} else {
		s.pending = append(s.pending, pendingTap{chantName: chantName, at: now})
		s.log.Warn().Int("pending", len(s.pending)).Msg("history store unreadable, tap kept in memory")
	}

	head, _ := next.Head()
	return head, created, next.Len()
}

func (s *SessionService) History(ctx context.Context) domain.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.history
}

// Clear empties the log and removes its persisted record.
func (s *SessionService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = domain.NewHistory(nil)
	s.loaded = true
	s.pending = nil
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.log.Info().Msg("history cleared")
	return nil
}

func (s *SessionService) Export(ctx context.Context, dir string) ([]string, error) {
	if s.journal == nil {
		return nil, fmt.Errorf("journal writer is not configured")
	}
	history := s.History(ctx)
	days := domain.GroupByDay(history.Sessions(), s.clock.Now().Location())
	paths := make([]string, 0, len(days))
	for _, day := range days {
		path, err := s.journal.WriteDay(ctx, dir, day)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Location is the zone sessions are bucketed and displayed in.
func (s *SessionService) Location() *time.Location {
	return s.clock.Now().Location()
}

// ensureLoaded reads the store until a read succeeds. Malformed content is
// final and falls back to empty; any other read error leaves the service
// unloaded so the next call retries.
func (s *SessionService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	snapshot, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrMalformedHistory):
		s.log.Warn().Err(err).Msg("history malformed, starting empty")
		snapshot = domain.Snapshot{}
	case err != nil:
		s.log.Error().Err(err).Msg("history unreadable, will retry")
		return
	}
	if snapshot.Dropped > 0 {
		s.log.Warn().Int("dropped", snapshot.Dropped).Msg("discarded malformed session records")
	}

	history := domain.NewHistory(snapshot.Sessions)
	for _, p := range s.pending {
		history, _ = history.RecordTap(p.chantName, p.at, s.idGen.New)
	}
	s.history = history
	s.loaded = true
	if len(s.pending) > 0 {
		s.pending = nil
		s.persist(ctx)
	}
}

// persist is best effort: a failed write is logged and the in-memory log
// stays authoritative until the next successful save.
func (s *SessionService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.history.Sessions()); err != nil {
		s.log.Error().Err(err).Msg("persist history")
	}
}
