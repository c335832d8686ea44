package set_selection_date

import (
	"context"

	setSelectionDate "github.com/m04kA/SMC-SportBookingService/internal/usecase/set_selection_date"
)

type SetSelectionDateUseCase interface {
	Execute(ctx context.Context, req *setSelectionDate.Request) (*setSelectionDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
