package get_selection

import (
	"context"

	getSelection "github.com/m04kA/ChaletBookingService/internal/usecase/get_selection"
)

type GetSelectionUseCase interface {
	Execute(ctx context.Context, req *getSelection.Request) (*getSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
