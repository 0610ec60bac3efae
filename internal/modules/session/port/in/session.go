package in

import (
	"context"

	"japa/internal/modules/session/dto"
)

type Usecase interface {
	RecordTap(ctx context.Context, input dto.TapInput) (dto.TapOutput, error)
	History(ctx context.Context) (dto.HistoryOutput, error)
	Clear(ctx context.Context, input dto.ClearInput) error
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
