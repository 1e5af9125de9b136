package get_selection

import (
	"context"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

// SelectionStore хранилище сессий выбора
type SelectionStore interface {
	Load(ctx context.Context, selectionID string) (*domain.SelectionSession, selection.State, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
