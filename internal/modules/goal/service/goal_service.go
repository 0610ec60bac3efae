package service

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"japa/internal/modules/goal/domain"
	goalout "japa/internal/modules/goal/port/out"
	"japa/internal/platform/calendar"
	"japa/internal/platform/clock"
)

// GoalService runs the calculator against the current instant and memoizes
// reports per history fingerprint and calendar day.
type GoalService struct {
	clock clock.Clock
	cache goalout.ReportCache
	log   zerolog.Logger
}

func NewGoalService(clock clock.Clock, cache goalout.ReportCache, log zerolog.Logger) *GoalService {
	return &GoalService{clock: clock, cache: cache, log: log}
}

func (s *GoalService) Now() time.Time {
	return s.clock.Now()
}

func (s *GoalService) Progress(entries []domain.Entry, fingerprint string, goal domain.GoalConfig, r domain.Range) domain.Progress {
	now := s.clock.Now()
	key := fmt.Sprintf("progress:%s:%s:%s:%s:%d", fingerprint, r, calendar.DayKey(now), goal.Type, goal.Value)
	var cached domain.Progress
	if s.lookup(key, &cached) {
		return cached
	}
	progress := domain.ComputeProgress(entries, goal, r, now)
	s.store(key, progress)
	return progress
}

func (s *GoalService) Series(entries []domain.Entry, fingerprint string, r domain.Range) []domain.Point {
	now := s.clock.Now()
	key := fmt.Sprintf("series:%s:%s:%s", fingerprint, r, calendar.DayKey(now))
	var cached []domain.Point
	if s.lookup(key, &cached) {
		return cached
	}
	points := domain.BucketSeries(entries, r, now)
	s.store(key, points)
	return points
}

func (s *GoalService) lookup(key string, into any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("discard cached report")
		return false
	}
	return true
}

func (s *GoalService) store(key string, report any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("encode report")
		return
	}
	s.cache.Set(key, raw)
}
