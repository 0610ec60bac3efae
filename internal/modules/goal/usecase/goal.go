package usecase

import (
	"context"
	"fmt"

	"japa/internal/modules/goal/domain"
	goaldto "japa/internal/modules/goal/dto"
	goalin "japa/internal/modules/goal/port/in"
	"japa/internal/modules/goal/service"
	sessiondomain "japa/internal/modules/session/domain"
	sessiondto "japa/internal/modules/session/dto"
	sessionin "japa/internal/modules/session/port/in"
	settingsin "japa/internal/modules/settings/port/in"
	apperrors "japa/internal/platform/errors"
)

type Interactor struct {
	svc      *service.GoalService
	sessions sessionin.Usecase
	settings settingsin.Usecase
}

func NewInteractor(svc *service.GoalService, sessions sessionin.Usecase, settings settingsin.Usecase) goalin.Usecase {
	return &Interactor{svc: svc, sessions: sessions, settings: settings}
}

func (i *Interactor) ComputeProgress(ctx context.Context, input goaldto.ProgressInput) (goaldto.ProgressOutput, error) {
	r, err := parseRange(input.Range)
	if err != nil {
		return goaldto.ProgressOutput{}, err
	}
	history, err := i.sessions.History(ctx)
	if err != nil {
		return goaldto.ProgressOutput{}, err
	}
	goal, err := i.goal(ctx)
	if err != nil {
		return goaldto.ProgressOutput{}, err
	}
	return progressOutput(i.svc.Progress(entries(history), history.Fingerprint, goal, r), goal), nil
}

func (i *Interactor) BucketSeries(ctx context.Context, input goaldto.SeriesInput) (goaldto.SeriesOutput, error) {
	r, err := parseRange(input.Range)
	if err != nil {
		return goaldto.SeriesOutput{}, err
	}
	history, err := i.sessions.History(ctx)
	if err != nil {
		return goaldto.SeriesOutput{}, err
	}
	out := goaldto.SeriesOutput{Range: string(r)}
	for _, p := range i.svc.Series(entries(history), history.Fingerprint, r) {
		out.Points = append(out.Points, goaldto.PointOutput{Label: p.Label, Count: p.Count})
		out.Total += p.Count
		if p.Count > out.Max {
			out.Max = p.Count
		}
	}
	return out, nil
}

// Summary is the header of the mala screen: today for the active chant,
// lifetime totals and today's progress.
func (i *Interactor) Summary(ctx context.Context) (goaldto.SummaryOutput, error) {
	history, err := i.sessions.History(ctx)
	if err != nil {
		return goaldto.SummaryOutput{}, err
	}
	chant, err := i.settings.ActiveChantName(ctx)
	if err != nil {
		return goaldto.SummaryOutput{}, err
	}
	goal, err := i.goal(ctx)
	if err != nil {
		return goaldto.SummaryOutput{}, err
	}
	all := entries(history)
	today := domain.TodayForChant(all, chant, i.svc.Now())
	lifetime := domain.Lifetime(all)
	return goaldto.SummaryOutput{
		ChantName:      chant,
		TodayCounts:    today,
		TodayMalas:     formatMalas(today),
		LifetimeCounts: lifetime,
		LifetimeMalas:  formatMalas(lifetime),
		Daily:          progressOutput(i.svc.Progress(all, history.Fingerprint, goal, domain.RangeDaily), goal),
	}, nil
}

func (i *Interactor) goal(ctx context.Context) (domain.GoalConfig, error) {
	settings, err := i.settings.Get(ctx)
	if err != nil {
		return domain.GoalConfig{}, err
	}
	return domain.GoalConfig{Type: domain.GoalType(settings.GoalType), Value: settings.GoalValue}, nil
}

func parseRange(raw string) (domain.Range, error) {
	if raw == "" {
		return domain.RangeDaily, nil
	}
	r, err := domain.ParseRange(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return r, nil
}

func entries(history sessiondto.HistoryOutput) []domain.Entry {
	out := make([]domain.Entry, 0, len(history.Sessions))
	for _, s := range history.Sessions {
		out = append(out, domain.Entry{At: s.Timestamp, ChantName: s.ChantName, Counts: s.TotalCounts})
	}
	return out
}

func progressOutput(p domain.Progress, goal domain.GoalConfig) goaldto.ProgressOutput {
	return goaldto.ProgressOutput{
		Range:     string(p.Range),
		Current:   p.Current,
		Target:    p.Target,
		Percent:   p.Percent,
		Clamped:   p.Clamped(),
		GoalType:  string(goal.Type),
		GoalValue: goal.Value,
	}
}

func formatMalas(counts int) string {
	return fmt.Sprintf("%.1f", sessiondomain.Malas(counts))
}
