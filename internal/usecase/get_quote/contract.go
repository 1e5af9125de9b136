package get_quote

import (
	"context"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

// ChaletService снимок шале с занятыми периодами
type ChaletService interface {
	GetSnapshot(ctx context.Context, chaletID int64) (*domain.Chalet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
