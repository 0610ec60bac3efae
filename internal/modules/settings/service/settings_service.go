package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"japa/internal/modules/settings/domain"
	settingsout "japa/internal/modules/settings/port/out"
)

// SettingsService holds the active preferences. Reads never fail: an
// unreadable record degrades to defaults and is logged.
type SettingsService struct {
	store   settingsout.SettingsStore
	catalog domain.Catalog
	log     zerolog.Logger

	mu       sync.Mutex
	loaded   bool
	settings domain.Settings
}

func NewSettingsService(store settingsout.SettingsStore, catalog domain.Catalog, log zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, catalog: catalog, log: log}
}

func (s *SettingsService) Catalog() domain.Catalog {
	return s.catalog
}

func (s *SettingsService) Current(ctx context.Context) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.settings
}

// Update applies fn to the current settings, normalizes and persists the
// result. The persisted write is best effort.
func (s *SettingsService) Update(ctx context.Context, fn func(domain.Settings) domain.Settings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.settings = fn(s.settings).Normalize(s.catalog)
	if err := s.store.Save(ctx, s.settings); err != nil {
		s.log.Error().Err(err).Msg("persist settings")
	}
	return s.settings
}

func (s *SettingsService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	loaded, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings unreadable, using defaults")
		loaded = domain.Defaults()
	}
	s.settings = loaded.Normalize(s.catalog)
}
