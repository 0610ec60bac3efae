package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japa/internal/modules/session/adapter/out"
	"japa/internal/modules/session/domain"
	"japa/internal/platform/kv"
	"japa/internal/platform/markdown"
)

func newDB(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	db, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "japa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVHistoryStoreRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := out.NewKVHistoryStore(newDB(t))

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Sessions)

	sessions := []domain.Session{
		{ID: "b", Timestamp: 2000, ChantName: "Ram", TotalCounts: 3, TotalMalas: domain.Malas(3), DurationSeconds: 1},
		{ID: "a", Timestamp: 1000, ChantName: "Radha", TotalCounts: 108, TotalMalas: 1, DurationSeconds: 1},
	}
	require.NoError(t, store.Save(ctx, sessions))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sessions, loaded.Sessions)
	assert.Zero(t, loaded.Dropped)

	require.NoError(t, store.Save(ctx, loaded.Sessions))
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestKVHistoryStoreDropsBadEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	raw := `[{"id":"ok","timestamp":5,"chantName":"Ram","totalCounts":4},{"id":"","totalCounts":2},"junk",{"id":"neg","totalCounts":-3}]`
	require.NoError(t, db.Put(ctx, out.HistoryKey, []byte(raw)))

	snapshot, err := out.NewKVHistoryStore(db).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Sessions, 1)
	assert.Equal(t, "ok", snapshot.Sessions[0].ID)
	assert.Equal(t, 3, snapshot.Dropped)
}

func TestKVHistoryStoreRejectsNonArray(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	require.NoError(t, db.Put(ctx, out.HistoryKey, []byte(`"hello"`)))
	_, err := out.NewKVHistoryStore(db).Load(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedHistory)
}

func TestMarkdownJournalPreservesUserNotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	journal := out.NewMarkdownJournal()

	day := domain.DayJournal{Date: date, Sessions: []domain.Session{
		{ID: "a", Timestamp: date.Add(7 * time.Hour).UnixMilli(), ChantName: "Ram", TotalCounts: 54, TotalMalas: 0.5},
	}}
	path, err := journal.WriteDay(ctx, dir, day)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := string(raw) + "\nFelt calm today.\n"
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	day.Sessions = append(day.Sessions, domain.Session{ID: "b", Timestamp: date.Add(9 * time.Hour).UnixMilli(), ChantName: "Ram", TotalCounts: 54, TotalMalas: 0.5})
	_, err = journal.WriteDay(ctx, dir, day)
	require.NoError(t, err)

	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	var header struct {
		TotalCounts int     `yaml:"total_counts"`
		TotalMalas  float64 `yaml:"total_malas"`
		Sessions    int     `yaml:"sessions"`
	}
	body, ok, err := markdown.Split(string(raw), &header)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 108, header.TotalCounts)
	assert.Equal(t, 1.0, header.TotalMalas)
	assert.Equal(t, 2, header.Sessions)
	assert.Contains(t, body, "Felt calm today.")
	assert.Contains(t, body, "| 09:00 | Ram | 54 | 0.5 |")
}
