package in

import (
	"context"

	"japa/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	SelectLanguage(ctx context.Context, languageID string) (dto.SettingsOutput, error)
	SelectChant(ctx context.Context, chantID string) (dto.SettingsOutput, error)
	SetCustomChant(ctx context.Context, input dto.CustomChantInput) (dto.SettingsOutput, error)
	SetGoalType(ctx context.Context, goalType string) (dto.SettingsOutput, error)
	SetGoalValue(ctx context.Context, raw string) (dto.SettingsOutput, error)
	StepGoal(ctx context.Context, steps int) (dto.SettingsOutput, error)
	ActiveChantName(ctx context.Context) (string, error)
	Catalog(ctx context.Context) (dto.CatalogOutput, error)
}
