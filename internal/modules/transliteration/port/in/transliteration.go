package in

import (
	"context"

	"japa/internal/modules/transliteration/dto"
)

type Usecase interface {
	Transliterate(ctx context.Context, input dto.TransliterateInput) (dto.TransliterateOutput, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
