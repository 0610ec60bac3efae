package out

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	goaldomain "japa/internal/modules/goal/domain"
	"japa/internal/modules/settings/domain"
	settingsout "japa/internal/modules/settings/port/out"
	"japa/internal/platform/kv"
)

const SettingsKey = "ananta_naam_settings"

// settingsRecord uses pointers so an absent field keeps its default.
type settingsRecord struct {
	LanguageID  *string             `json:"languageId"`
	ChantID     *string             `json:"chantId"`
	CustomChant *domain.CustomChant `json:"customChant"`
	Goal        *goalRecord         `json:"goal"`
}

type goalRecord struct {
	Type  *goaldomain.GoalType `json:"type"`
	Value *int                 `json:"value"`
}

type KVSettingsStore struct {
	store kv.Store
}

func NewKVSettingsStore(store kv.Store) settingsout.SettingsStore {
	return &KVSettingsStore{store: store}
}

func (s *KVSettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	settings := domain.Defaults()
	raw, ok, err := s.store.Get(ctx, SettingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return settings, nil
	}
	var record settingsRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return settings, fmt.Errorf("decode settings: %w", err)
	}
	if record.LanguageID != nil {
		settings.LanguageID = *record.LanguageID
	}
	if record.ChantID != nil {
		settings.ChantID = *record.ChantID
	}
	if record.CustomChant != nil {
		settings.CustomChant = *record.CustomChant
	}
	if record.Goal != nil {
		if record.Goal.Type != nil {
			settings.Goal.Type = *record.Goal.Type
		}
		if record.Goal.Value != nil {
			settings.Goal.Value = *record.Goal.Value
		}
	}
	return settings, nil
}

func (s *KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.store.Put(ctx, SettingsKey, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
