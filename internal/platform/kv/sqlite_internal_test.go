package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreWaitsOnLocks(t *testing.T) {
	t.Parallel()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "japa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var ms int64
	require.NoError(t, store.db.QueryRowContext(context.Background(), "PRAGMA busy_timeout").Scan(&ms))
	assert.Equal(t, BusyTimeout.Milliseconds(), ms)
}
