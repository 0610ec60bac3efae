package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"japa/internal/modules/session/domain"
	sessiondto "japa/internal/modules/session/dto"
	sessionin "japa/internal/modules/session/port/in"
	"japa/internal/modules/session/service"
	apperrors "japa/internal/platform/errors"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordTap(ctx context.Context, input sessiondto.TapInput) (sessiondto.TapOutput, error) {
	// recorded verbatim: merging compares names exactly
	if input.ChantName == "" {
		return sessiondto.TapOutput{}, fmt.Errorf("%w: chant name is required", apperrors.ErrInvalidInput)
	}
	session, created, count := i.svc.RecordTap(ctx, input.ChantName)
	return sessiondto.TapOutput{Session: toOutput(session, i.svc.Location()), Created: created, SessionCount: count}, nil
}

func (i *Interactor) History(ctx context.Context) (sessiondto.HistoryOutput, error) {
	history := i.svc.History(ctx)
	sessions := history.Sessions()
	loc := i.svc.Location()
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s, loc))
	}
	return sessiondto.HistoryOutput{
		Sessions:    out,
		Fingerprint: history.Fingerprint(),
		TotalCounts: history.TotalCounts(),
	}, nil
}

func (i *Interactor) Clear(ctx context.Context, input sessiondto.ClearInput) error {
	if !input.Confirmed {
		return apperrors.ErrConfirmationRequired
	}
	return i.svc.Clear(ctx)
}

func (i *Interactor) Export(ctx context.Context, input sessiondto.ExportInput) (sessiondto.ExportOutput, error) {
	if strings.TrimSpace(input.Dir) == "" {
		return sessiondto.ExportOutput{}, fmt.Errorf("%w: export dir is required", apperrors.ErrInvalidInput)
	}
	paths, err := i.svc.Export(ctx, input.Dir)
	if err != nil {
		return sessiondto.ExportOutput{}, err
	}
	return sessiondto.ExportOutput{Paths: paths, Days: len(paths)}, nil
}

func toOutput(s domain.Session, loc *time.Location) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:              s.ID,
		ChantName:       s.ChantName,
		Timestamp:       s.Time(loc),
		TotalCounts:     s.TotalCounts,
		TotalMalas:      s.TotalMalas,
		DurationSeconds: s.DurationSeconds,
	}
}
