package chalets

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/integrations/platformapi"
	"github.com/m04kA/ChaletBookingService/pkg/daymath"
)

// Service собирает снимок шале: данные площадки + локальные активные бронирования
type Service struct {
	platform     PlatformClient
	reservations ReservationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса шале
// reservations может быть nil, тогда используются только данные площадки
func NewService(platform PlatformClient, reservations ReservationRepository, logger Logger) *Service {
	return &Service{
		platform:     platform,
		reservations: reservations,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetSnapshot получает шале с площадки и добавляет в занятые периоды локальные pending/confirmed брони
// Ошибка локального хранилища не блокирует календарь: логируется, используются данные площадки
func (s *Service) GetSnapshot(ctx context.Context, chaletID int64) (*domain.Chalet, error) {
	chalet, err := s.platform.GetChalet(ctx, chaletID)
	if err != nil {
		if errors.Is(err, platformapi.ErrChaletNotFound) {
			s.logger.Warn("GetSnapshot: chalet id=%d not found", chaletID)
			return nil, ErrChaletNotFound
		}
		s.logger.Error("GetSnapshot: platform unavailable for chalet id=%d: %v", chaletID, err)
		return nil, fmt.Errorf("%w: chalet_id=%d, error=%v", ErrPlatformUnavailable, chaletID, err)
	}

	if s.reservations == nil {
		return chalet, nil
	}

	today := daymath.StartOfDay(s.timeProvider.Now())
	local, err := s.reservations.ListActiveFrom(ctx, chaletID, today)
	if err != nil {
		s.logger.Warn("GetSnapshot: local reservations unavailable for chalet id=%d, using platform data only: %v", chaletID, err)
		return chalet, nil
	}

	for _, r := range local {
		chalet.ReservedPeriods = append(chalet.ReservedPeriods, r.ToReservedPeriod())
	}

	if len(local) > 0 {
		s.logger.Info("GetSnapshot: merged %d local reservations into chalet id=%d", len(local), chaletID)
	}

	return chalet, nil
}
