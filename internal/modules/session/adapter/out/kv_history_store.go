package out

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"japa/internal/modules/session/domain"
	sessionout "japa/internal/modules/session/port/out"
	"japa/internal/platform/kv"
)

// HistoryKey is the storage key of the session log record.
const HistoryKey = "ananta_naam_history"

type KVHistoryStore struct {
	store kv.Store
}

func NewKVHistoryStore(store kv.Store) sessionout.HistoryStore {
	return &KVHistoryStore{store: store}
}

// Load decodes the log record. A record that is not a JSON array yields
// ErrMalformedHistory; individual entries that fail to decode or validate are
// dropped and counted.
func (s *KVHistoryStore) Load(ctx context.Context) (domain.Snapshot, error) {
	raw, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load history: %w", err)
	}
	if !ok {
		return domain.Snapshot{}, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrMalformedHistory, err)
	}
	snapshot := domain.Snapshot{Sessions: make([]domain.Session, 0, len(entries))}
	for _, entry := range entries {
		var session domain.Session
		if err := json.Unmarshal(entry, &session); err != nil {
			snapshot.Dropped++
			continue
		}
		if err := session.Validate(); err != nil {
			snapshot.Dropped++
			continue
		}
		snapshot.Sessions = append(snapshot.Sessions, session)
	}
	return snapshot, nil
}

func (s *KVHistoryStore) Save(ctx context.Context, sessions []domain.Session) error {
	if sessions == nil {
		sessions = []domain.Session{}
	}
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.store.Put(ctx, HistoryKey, raw); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (s *KVHistoryStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, HistoryKey)
}
