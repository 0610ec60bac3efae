package usecase_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goalout "japa/internal/modules/goal/adapter/out"
	goaldto "japa/internal/modules/goal/dto"
	goalin "japa/internal/modules/goal/port/in"
	goalservice "japa/internal/modules/goal/service"
	goalusecase "japa/internal/modules/goal/usecase"
	sessionout "japa/internal/modules/session/adapter/out"
	sessiondto "japa/internal/modules/session/dto"
	sessionin "japa/internal/modules/session/port/in"
	sessionservice "japa/internal/modules/session/service"
	sessionusecase "japa/internal/modules/session/usecase"
	settingsout "japa/internal/modules/settings/adapter/out"
	settingsdomain "japa/internal/modules/settings/domain"
	settingsin "japa/internal/modules/settings/port/in"
	settingsservice "japa/internal/modules/settings/service"
	settingsusecase "japa/internal/modules/settings/usecase"
	apperrors "japa/internal/platform/errors"
	"japa/internal/platform/kv"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct{ n int }

func (f *fakeID) New() string {
	f.n++
	return fmt.Sprintf("id-%d", f.n)
}

type countingCache struct {
	entries map[string][]byte
	hits    int
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *countingCache) Set(key string, value []byte) { c.entries[key] = value }

type fixture struct {
	clock    *fakeClock
	sessions sessionin.Usecase
	settings settingsin.Usecase
	goals    goalin.Usecase
	cache    *countingCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "japa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clk := &fakeClock{now: time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)}
	log := zerolog.Nop()
	sessions := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, &fakeID{}, sessionout.NewKVHistoryStore(db), nil, log))
	settings := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsout.NewKVSettingsStore(db), settingsdomain.DefaultCatalog(), log))
	cache := &countingCache{entries: map[string][]byte{}}
	goals := goalusecase.NewInteractor(goalservice.NewGoalService(clk, cache, log), sessions, settings)
	return fixture{clock: clk, sessions: sessions, settings: settings, goals: goals, cache: cache}
}

func (f fixture) tap(t *testing.T, chant string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.sessions.RecordTap(context.Background(), sessiondto.TapInput{ChantName: chant})
		require.NoError(t, err)
	}
}

func TestEmptyStoreDailyProgress(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	got, err := f.goals.ComputeProgress(context.Background(), goaldto.ProgressInput{Range: "daily"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 1000, got.Target)
	assert.Zero(t, got.Percent)
}

func TestTwoChantsSameDaySumToOneMala(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.tap(t, "राम", 50)
	f.clock.now = f.clock.now.Add(2 * time.Hour)
	f.tap(t, "राधा", 58)

	got, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{})
	require.NoError(t, err)
	assert.Equal(t, "daily", got.Range)
	assert.Equal(t, 108, got.Current)

	series, err := f.goals.BucketSeries(ctx, goaldto.SeriesInput{Range: "daily"})
	require.NoError(t, err)
	require.Len(t, series.Points, 7)
	assert.Equal(t, "Oct 19", series.Points[6].Label)
	assert.Equal(t, 108, series.Total)
	assert.Equal(t, 108, series.Max)
}

func TestWeeklyGoalScalesMonthlyTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.settings.SetGoalType(ctx, "weekly")
	require.NoError(t, err)
	_, err = f.settings.SetGoalValue(ctx, "700")
	require.NoError(t, err)

	daily, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "daily"})
	require.NoError(t, err)
	assert.Equal(t, 700, daily.Target)
	monthly, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, 21000, monthly.Target)
	assert.Equal(t, "weekly", monthly.GoalType)
}

func TestOverAchievementKeptUnclamped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.settings.SetGoalValue(ctx, "100")
	require.NoError(t, err)
	f.tap(t, "राम", 120)

	got, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "daily"})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, got.Percent, 1e-9)
	assert.Equal(t, 100.0, got.Clamped)
}

func TestSummaryReportsTodayForActiveChant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	active, err := f.settings.ActiveChantName(ctx)
	require.NoError(t, err)
	f.tap(t, active, 54)
	f.tap(t, "other", 10)
	f.clock.now = f.clock.now.AddDate(0, 0, 1)
	f.tap(t, active, 27)

	got, err := f.goals.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, got.ChantName)
	assert.Equal(t, 27, got.TodayCounts)
	assert.Equal(t, "0.2", got.TodayMalas)
	assert.Equal(t, 91, got.LifetimeCounts)
	assert.Equal(t, "0.8", got.LifetimeMalas)
	assert.Equal(t, 27, got.Daily.Current)
}

func TestReportsAreCachedUntilHistoryChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.tap(t, "राम", 3)

	first, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "weekly"})
	require.NoError(t, err)
	second, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.cache.hits)

	f.tap(t, "राम", 1)
	third, err := f.goals.ComputeProgress(ctx, goaldto.ProgressInput{Range: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, 4, third.Current)
	assert.Equal(t, 1, f.cache.hits)
}

func TestUnknownRangeIsInvalidInput(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.goals.BucketSeries(context.Background(), goaldto.SeriesInput{Range: "hourly"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFreeCacheReportCache(t *testing.T) {
	t.Parallel()
	cache := goalout.NewFreeCacheReportCache(1, zerolog.Nop())
	_, ok := cache.Get("k")
	assert.False(t, ok)
	cache.Set("k", []byte("v"))
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(got))

	disabled := goalout.NewFreeCacheReportCache(0, zerolog.Nop())
	disabled.Set("k", []byte("v"))
	_, ok = disabled.Get("k")
	assert.False(t, ok)
}
