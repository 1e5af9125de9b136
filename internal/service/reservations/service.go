package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	reservationRepo "github.com/m04kA/ChaletBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/ChaletBookingService/internal/service/reservations/models"
)

// Service сервис чтения локальных бронирований
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// ListByChalet бронирования пользователя по шале, опционально по статусу
// Чужие бронирования не возвращаются
func (s *Service) ListByChalet(ctx context.Context, req *models.ListByChaletRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByChalet: fetching reservations for chalet=%d, user=%d", req.ChaletID, req.UserID)

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			s.logger.Warn("ListByChalet: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	list, err := s.repo.ListByChalet(ctx, req.ChaletID, status)
	if err != nil {
		s.logger.Error("ListByChalet: repository error for chalet=%d: %v", req.ChaletID, err)
		return nil, fmt.Errorf("%w: ListByChalet - repository error: %v", ErrInternal, err)
	}

	own := make([]*domain.Reservation, 0, len(list))
	for _, r := range list {
		if r.UserID == req.UserID {
			own = append(own, r)
		}
	}

	s.logger.Info("ListByChalet: found %d reservations for chalet=%d, user=%d", len(own), req.ChaletID, req.UserID)
	return models.FromDomainReservations(own), nil
}
