package in

import (
	"context"

	settingsdto "japa/internal/modules/settings/dto"
	settingsin "japa/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Language(ctx context.Context, id string) (settingsdto.SettingsOutput, error) {
	return h.usecase.SelectLanguage(ctx, id)
}

func (h CLIHandler) Chant(ctx context.Context, id string) (settingsdto.SettingsOutput, error) {
	return h.usecase.SelectChant(ctx, id)
}

func (h CLIHandler) Custom(ctx context.Context, name, nativeName string) (settingsdto.SettingsOutput, error) {
	return h.usecase.SetCustomChant(ctx, settingsdto.CustomChantInput{Name: name, NativeName: nativeName})
}

// Goal sets the type when given, then the value when given.
func (h CLIHandler) Goal(ctx context.Context, goalType, value string) (settingsdto.SettingsOutput, error) {
	out, err := h.usecase.Get(ctx)
	if err != nil {
		return out, err
	}
	if goalType != "" {
		if out, err = h.usecase.SetGoalType(ctx, goalType); err != nil {
			return out, err
		}
	}
	if value != "" {
		out, err = h.usecase.SetGoalValue(ctx, value)
	}
	return out, err
}

func (h CLIHandler) Step(ctx context.Context, steps int) (settingsdto.SettingsOutput, error) {
	return h.usecase.StepGoal(ctx, steps)
}

func (h CLIHandler) Catalog(ctx context.Context) (settingsdto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx)
}
