package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

// ChaletService снимок шале с занятыми периодами
type ChaletService interface {
	GetSnapshot(ctx context.Context, chaletID int64) (*domain.Chalet, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
