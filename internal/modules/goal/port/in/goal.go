package in

import (
	"context"

	"japa/internal/modules/goal/dto"
)

type Usecase interface {
	ComputeProgress(ctx context.Context, input dto.ProgressInput) (dto.ProgressOutput, error)
	BucketSeries(ctx context.Context, input dto.SeriesInput) (dto.SeriesOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
