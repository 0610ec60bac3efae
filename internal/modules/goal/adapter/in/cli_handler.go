package in

import (
	"context"

	goaldto "japa/internal/modules/goal/dto"
	goalin "japa/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Progress(ctx context.Context, rangeName string) (goaldto.ProgressOutput, error) {
	return h.usecase.ComputeProgress(ctx, goaldto.ProgressInput{Range: rangeName})
}

func (h CLIHandler) Series(ctx context.Context, rangeName string) (goaldto.SeriesOutput, error) {
	return h.usecase.BucketSeries(ctx, goaldto.SeriesInput{Range: rangeName})
}

func (h CLIHandler) Summary(ctx context.Context) (goaldto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
