package start_selection

import (
	"context"

	startSelection "github.com/m04kA/ChaletBookingService/internal/usecase/start_selection"
)

type StartSelectionUseCase interface {
	Execute(ctx context.Context, req *startSelection.Request) (*startSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
