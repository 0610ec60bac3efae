package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japa/internal/modules/session/domain"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s-%d", n)
	}
}

var epoch = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)

func at(ms int64) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }

func TestRecordTapScenarioMergeThenSplitAfterWindow(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h := domain.NewHistory(nil)

	h, created := h.RecordTap("Ram", at(0), ids)
	require.True(t, created)
	require.Equal(t, 1, h.Len())
	head, _ := h.Head()
	assert.Equal(t, 1, head.TotalCounts)
	assert.Equal(t, 1, head.DurationSeconds)
	firstID := head.ID

	h, created = h.RecordTap("Ram", at(60_000), ids)
	require.False(t, created)
	head, _ = h.Head()
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, head.TotalCounts)
	assert.Equal(t, firstID, head.ID)
	assert.Equal(t, at(60_000).UnixMilli(), head.Timestamp)

	h, created = h.RecordTap("Ram", at(400_000), ids)
	require.True(t, created)
	require.Equal(t, 2, h.Len())
	sessions := h.Sessions()
	assert.NotEqual(t, firstID, sessions[0].ID)
	assert.Equal(t, 1, sessions[0].TotalCounts)
	assert.Equal(t, firstID, sessions[1].ID)
	assert.Equal(t, 2, sessions[1].TotalCounts)
}

func TestRecordTapWindowIsMeasuredFromLastTap(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h := domain.NewHistory(nil)
	// Each tap is 4 minutes after the previous one, so the session keeps
	// extending even though the first tap is long past the window.
	for i := int64(0); i < 5; i++ {
		h, _ = h.RecordTap("Radha", at(i*240_000), ids)
	}
	assert.Equal(t, 1, h.Len())
	head, _ := h.Head()
	assert.Equal(t, 5, head.TotalCounts)
}

func TestRecordTapWindowBoundaryIsExclusive(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h, _ := domain.NewHistory(nil).RecordTap("Ram", at(0), ids)

	merged, created := h.RecordTap("Ram", at(299_999), ids)
	assert.False(t, created)
	assert.Equal(t, 1, merged.Len())

	split, created := h.RecordTap("Ram", at(300_000), ids)
	assert.True(t, created)
	assert.Equal(t, 2, split.Len())
}

func TestRecordTapDifferentChantStartsNewSessionAndLeavesOthersUntouched(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h := domain.NewHistory(nil)
	h, _ = h.RecordTap("Ram", at(0), ids)
	h, _ = h.RecordTap("Ram", at(1_000), ids)
	before := h.Sessions()

	next, created := h.RecordTap("Krishna", at(2_000), ids)
	require.True(t, created)
	after := next.Sessions()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Krishna", after[0].ChantName)
	assert.Equal(t, before, after[1:])
	// the receiver is a value and stays as it was
	assert.Equal(t, before, h.Sessions())
}

func TestMalasAlwaysDerivedFromCounts(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h := domain.NewHistory([]domain.Session{{ID: "old", TotalCounts: 216, TotalMalas: 99}})
	for i := int64(0); i < 120; i++ {
		chant := "Ram"
		if i%50 == 49 {
			chant = "Radha"
		}
		h, _ = h.RecordTap(chant, at(i*1_000), ids)
		for _, s := range h.Sessions() {
			require.InDelta(t, float64(s.TotalCounts)/108, s.TotalMalas, 1e-12)
		}
	}
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	t.Parallel()
	h := domain.NewHistory([]domain.Session{{ID: "a", TotalCounts: 1}})
	copyOut := h.Sessions()
	copyOut[0].TotalCounts = 500
	head, _ := h.Head()
	assert.Equal(t, 1, head.TotalCounts)
}

func TestReplaceHeadOnEmptyPrepends(t *testing.T) {
	t.Parallel()
	h := domain.NewHistory(nil).ReplaceHead(domain.Session{ID: "x"})
	assert.Equal(t, 1, h.Len())
}

func TestFingerprintTracksHeadAndLength(t *testing.T) {
	t.Parallel()
	ids := sequentialIDs()
	h := domain.NewHistory(nil)
	assert.Equal(t, "empty", h.Fingerprint())
	h1, _ := h.RecordTap("Ram", at(0), ids)
	h2, _ := h1.RecordTap("Ram", at(1), ids)
	assert.NotEqual(t, h1.Fingerprint(), h2.Fingerprint())
	assert.Equal(t, 216, domain.NewHistory([]domain.Session{{ID: "a", TotalCounts: 108}, {ID: "b", TotalCounts: 108}}).TotalCounts())
}

func TestBeadCounterWrapsAtMala(t *testing.T) {
	t.Parallel()
	var c domain.BeadCounter
	completions := 0
	for i := 0; i < 2*domain.BeadsPerMala+5; i++ {
		if _, done := c.Advance(); done {
			completions++
		}
	}
	assert.Equal(t, 2, completions)
	assert.Equal(t, 5, c.Position())
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, domain.Session{ID: "a"}.Validate())
	assert.Error(t, domain.Session{}.Validate())
	assert.Error(t, domain.Session{ID: "a", TotalCounts: -1}.Validate())
}

func TestGroupByDayOldestFirst(t *testing.T) {
	t.Parallel()
	day := func(d, h int) int64 { return time.Date(2026, 10, d, h, 0, 0, 0, time.UTC).UnixMilli() }
	sessions := []domain.Session{
		{ID: "c", Timestamp: day(20, 9), TotalCounts: 10},
		{ID: "b", Timestamp: day(19, 21), TotalCounts: 58},
		{ID: "a", Timestamp: day(19, 6), TotalCounts: 50},
	}
	days := domain.GroupByDay(sessions, time.UTC)
	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, 108, days[0].TotalCounts())
	assert.Equal(t, "b", days[0].Sessions[0].ID)
	assert.Equal(t, 10, days[1].TotalCounts())
}
