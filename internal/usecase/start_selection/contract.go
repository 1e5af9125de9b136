package start_selection

import (
	"context"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

// ChaletService снимок шале с занятыми периодами
type ChaletService interface {
	GetSnapshot(ctx context.Context, chaletID int64) (*domain.Chalet, error)
}

// SelectionStore хранилище сессий выбора
type SelectionStore interface {
	Create(ctx context.Context, chalet *domain.Chalet) (*domain.SelectionSession, selection.State, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
