package checkout

import (
	"context"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/events"
	"github.com/m04kA/ChaletBookingService/internal/integrations/platformapi"
)

// DraftStore черновики бронирования и сессии выбора
type DraftStore interface {
	TakeDraft(ctx context.Context, selectionID string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, selectionID string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListActiveOverlapping(ctx context.Context, chaletID int64, start, end time.Time) ([]*domain.Reservation, error)
	Confirm(ctx context.Context, id int64, externalID string) error
	Fail(ctx context.Context, id int64, reason string) error
}

// PlatformClient интерфейс клиента площадки
type PlatformClient interface {
	CreateReservation(ctx context.Context, in platformapi.CreateReservationRequest) (*platformapi.CreateReservationResult, error)
}

// EventPublisher публикация итогов бронирования
type EventPublisher interface {
	PublishReservation(ctx context.Context, event events.ReservationEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик checkout по результату
type Metrics interface {
	ObserveCheckout(result string)
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
