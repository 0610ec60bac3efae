package usecase

import (
	"context"
	"fmt"

	goaldomain "japa/internal/modules/goal/domain"
	"japa/internal/modules/settings/domain"
	settingsdto "japa/internal/modules/settings/dto"
	settingsin "japa/internal/modules/settings/port/in"
	"japa/internal/modules/settings/service"
	apperrors "japa/internal/platform/errors"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return i.output(i.svc.Current(ctx)), nil
}

// SelectLanguage switches language and lands on its first preset.
func (i *Interactor) SelectLanguage(ctx context.Context, languageID string) (settingsdto.SettingsOutput, error) {
	catalog := i.svc.Catalog()
	if _, ok := catalog.Language(languageID); !ok {
		return settingsdto.SettingsOutput{}, fmt.Errorf("%w: language %q", apperrors.ErrNotFound, languageID)
	}
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.LanguageID = languageID
		s.ChantID = catalog.FirstChant(languageID).ID
		return s
	})
	return i.output(next), nil
}

func (i *Interactor) SelectChant(ctx context.Context, chantID string) (settingsdto.SettingsOutput, error) {
	current := i.svc.Current(ctx)
	if chantID != domain.CustomChantID {
		if _, ok := i.svc.Catalog().Chant(current.LanguageID, chantID); !ok {
			return settingsdto.SettingsOutput{}, fmt.Errorf("%w: chant %q in language %q", apperrors.ErrNotFound, chantID, current.LanguageID)
		}
	}
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.ChantID = chantID
		return s
	})
	return i.output(next), nil
}

func (i *Interactor) SetCustomChant(ctx context.Context, input settingsdto.CustomChantInput) (settingsdto.SettingsOutput, error) {
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.CustomChant = domain.CustomChant{Name: input.Name, NativeName: input.NativeName}
		return s
	})
	return i.output(next), nil
}

func (i *Interactor) SetGoalType(ctx context.Context, goalType string) (settingsdto.SettingsOutput, error) {
	parsed, err := goaldomain.ParseGoalType(goalType)
	if err != nil {
		return settingsdto.SettingsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.Goal.Type = parsed
		return s
	})
	return i.output(next), nil
}

// SetGoalValue never rejects input; unparsable text becomes zero.
func (i *Interactor) SetGoalValue(ctx context.Context, raw string) (settingsdto.SettingsOutput, error) {
	value := domain.ParseGoalValue(raw)
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.Goal.Value = value
		return s
	})
	return i.output(next), nil
}

func (i *Interactor) StepGoal(ctx context.Context, steps int) (settingsdto.SettingsOutput, error) {
	next := i.svc.Update(ctx, func(s domain.Settings) domain.Settings {
		s.Goal = s.Goal.Step(steps * goaldomain.GoalStep)
		return s
	})
	return i.output(next), nil
}

func (i *Interactor) ActiveChantName(ctx context.Context) (string, error) {
	return i.svc.Current(ctx).ActiveChantName(i.svc.Catalog()), nil
}

func (i *Interactor) Catalog(context.Context) (settingsdto.CatalogOutput, error) {
	catalog := i.svc.Catalog()
	out := settingsdto.CatalogOutput{Languages: make([]settingsdto.LanguageOutput, 0, len(catalog.Languages))}
	for _, l := range catalog.Languages {
		lang := settingsdto.LanguageOutput{ID: l.ID, Name: l.Name, NativeName: l.NativeName}
		for _, c := range catalog.Chants[l.ID] {
			lang.Chants = append(lang.Chants, settingsdto.ChantOutput{ID: c.ID, Name: c.Name, NativeName: c.NativeName, Color: c.Color})
		}
		out.Languages = append(out.Languages, lang)
	}
	return out, nil
}

func (i *Interactor) output(s domain.Settings) settingsdto.SettingsOutput {
	catalog := i.svc.Catalog()
	language, _ := catalog.Language(s.LanguageID)
	return settingsdto.SettingsOutput{
		LanguageID:       s.LanguageID,
		LanguageName:     language.Name,
		ChantID:          s.ChantID,
		ChantName:        s.ActiveChantName(catalog),
		Transliteration:  s.ActiveTransliteration(catalog),
		CustomName:       s.CustomChant.Name,
		CustomNativeName: s.CustomChant.NativeName,
		GoalType:         string(s.Goal.Type),
		GoalValue:        s.Goal.Value,
	}
}
