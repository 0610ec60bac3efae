package out

import (
	"context"

	"japa/internal/modules/session/domain"
)

type HistoryStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, sessions []domain.Session) error
	Clear(ctx context.Context) error
}

type JournalWriter interface {
	WriteDay(ctx context.Context, dir string, day domain.DayJournal) (string, error)
}
