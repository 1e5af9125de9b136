package confirm_selection

import (
	"context"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

// SelectionStore хранилище сессий выбора и черновиков
type SelectionStore interface {
	Load(ctx context.Context, selectionID string) (*domain.SelectionSession, selection.State, time.Time, error)
	SaveDraft(ctx context.Context, draft *domain.BookingDraft) (string, time.Time, error)
}

// Metrics счётчик собранных черновиков
type Metrics interface {
	ObserveDraftCreated()
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
