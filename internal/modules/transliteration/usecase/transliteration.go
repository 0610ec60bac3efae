package usecase

import (
	"context"
	"fmt"
	"strings"

	"japa/internal/modules/transliteration/domain"
	"japa/internal/modules/transliteration/dto"
	translitin "japa/internal/modules/transliteration/port/in"
	"japa/internal/modules/transliteration/service"
	apperrors "japa/internal/platform/errors"
)

type Interactor struct {
	svc *service.TransliterationService
}

func NewInteractor(svc *service.TransliterationService) translitin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Transliterate(ctx context.Context, input dto.TransliterateInput) (dto.TransliterateOutput, error) {
	req := domain.Request{Text: strings.TrimSpace(input.Text), Language: strings.TrimSpace(input.Language)}
	if err := req.Validate(); err != nil {
		return dto.TransliterateOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	native, plugin, err := i.svc.Transliterate(ctx, req)
	if err != nil {
		return dto.TransliterateOutput{}, err
	}
	return dto.TransliterateOutput{Text: req.Text, NativeName: native, Plugin: plugin}, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
