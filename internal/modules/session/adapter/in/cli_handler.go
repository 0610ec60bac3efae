package in

import (
	"context"

	sessiondto "japa/internal/modules/session/dto"
	sessionin "japa/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Tap(ctx context.Context, chantName string) (sessiondto.TapOutput, error) {
	return h.usecase.RecordTap(ctx, sessiondto.TapInput{ChantName: chantName})
}

func (h CLIHandler) History(ctx context.Context) (sessiondto.HistoryOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Clear(ctx context.Context, confirmed bool) error {
	return h.usecase.Clear(ctx, sessiondto.ClearInput{Confirmed: confirmed})
}

func (h CLIHandler) Export(ctx context.Context, dir string) (sessiondto.ExportOutput, error) {
	return h.usecase.Export(ctx, sessiondto.ExportInput{Dir: dir})
}
