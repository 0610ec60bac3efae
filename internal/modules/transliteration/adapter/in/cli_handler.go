package in

import (
	"context"

	"japa/internal/modules/transliteration/dto"
	translitin "japa/internal/modules/transliteration/port/in"
)

type CLIHandler struct {
	usecase translitin.Usecase
}

func NewCLIHandler(usecase translitin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Transliterate(ctx context.Context, text, language string) (dto.TransliterateOutput, error) {
	return h.usecase.Transliterate(ctx, dto.TransliterateInput{Text: text, Language: language})
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
