package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/events"
	"github.com/m04kA/ChaletBookingService/internal/integrations/platformapi"
	"github.com/m04kA/ChaletBookingService/internal/service/selections"
)

// UseCase use case оформления бронирования по черновику
type UseCase struct {
	drafts       DraftStore
	repo         ReservationRepository
	platform     PlatformClient
	publisher    EventPublisher
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(
	drafts DraftStore,
	repo ReservationRepository,
	platform PlatformClient,
	publisher EventPublisher,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:       drafts,
		repo:         repo,
		platform:     platform,
		publisher:    publisher,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute забирает черновик (один раз), резервирует даты локально и передаёт бронь площадке
// Проверка пересечений и вставка pending записи выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: user=%d, selection=%s", req.UserID, req.SelectionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	// 2. Забираем черновик: после этого шага он больше недоступен
	draft, err := uc.drafts.TakeDraft(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selections.ErrDraftNotFound) {
			uc.logger.Warn("Checkout: no draft for selection=%s", req.SelectionID)
			uc.observe(resultNoDraft)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("Checkout: failed to take draft for selection=%s: %v", req.SelectionID, err)
		uc.observe(resultInternalErr)
		return nil, fmt.Errorf("%w: failed to take draft: %v", ErrInternal, err)
	}

	if err := validateDraft(draft); err != nil {
		uc.logger.Error("Checkout: %v", err)
		uc.observe(resultInternalErr)
		return nil, err
	}

	// 3. Локальная резервация дат
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.repo.ListActiveOverlapping(txCtx, draft.ChaletID, draft.StartDate, draft.EndDate)
		if err != nil {
			uc.logger.Error("Checkout: failed to check overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to check overlapping reservations: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("Checkout: chalet=%d %s..%s overlaps %d active reservations",
				draft.ChaletID, draft.StartDate.Format(domain.DateFormat), draft.EndDate.Format(domain.DateFormat), len(overlapping))
			return ErrDatesTaken
		}

		created, err = uc.repo.Create(txCtx, &domain.Reservation{
			UserID:     req.UserID,
			ChaletID:   draft.ChaletID,
			StartDate:  draft.StartDate,
			EndDate:    draft.EndDate,
			Nights:     draft.Nights,
			GuestCount: draft.GuestCount,
			TotalPrice: draft.TotalPrice,
			Status:     domain.ReservationPending,
		})
		if err != nil {
			uc.logger.Error("Checkout: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDatesTaken) {
			uc.observe(resultDatesTaken)
			return nil, err
		}
		uc.observe(resultInternalErr)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("Checkout: pending reservation id=%d created", created.ID)

	// 4. Передаём бронирование площадке, без повторов
	result, platformErr := uc.platform.CreateReservation(ctx, platformapi.CreateReservationRequest{
		ChaletID:   created.ChaletID,
		UserID:     created.UserID,
		StartDate:  created.StartDate.Format(domain.DateFormat),
		EndDate:    created.EndDate.Format(domain.DateFormat),
		Nights:     created.Nights,
		GuestCount: created.GuestCount,
		TotalPrice: created.TotalPrice,
		RequestAt:  uc.timeProvider.Now(),
	})

	if platformErr != nil {
		return nil, uc.fail(ctx, created, platformErr)
	}

	// 5. Подтверждаем
	if err := uc.repo.Confirm(ctx, created.ID, result.ID); err != nil {
		uc.logger.Error("Checkout: platform accepted reservation id=%d (external=%s) but local confirm failed: %v",
			created.ID, result.ID, err)
		uc.observe(resultInternalErr)
		return nil, fmt.Errorf("%w: failed to confirm reservation: %v", ErrInternal, err)
	}
	created.Status = domain.ReservationConfirmed
	created.ExternalID = &result.ID

	uc.publish(ctx, created)
	uc.cleanup(ctx, req.SelectionID)
	uc.observe(resultConfirmed)

	uc.logger.Info("Checkout: reservation id=%d confirmed, external_id=%s", created.ID, result.ID)

	return &Response{
		ReservationID: created.ID,
		ChaletID:      created.ChaletID,
		StartDate:     created.StartDate,
		EndDate:       created.EndDate,
		Nights:        created.Nights,
		GuestCount:    created.GuestCount,
		TotalPrice:    created.TotalPrice,
		Status:        string(created.Status),
		ExternalID:    created.ExternalID,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// fail помечает бронирование failed и возвращает ошибку для клиента
func (uc *UseCase) fail(ctx context.Context, res *domain.Reservation, platformErr error) error {
	reason := platformErr.Error()
	uc.logger.Error("Checkout: platform failed for reservation id=%d: %v", res.ID, platformErr)

	if err := uc.repo.Fail(ctx, res.ID, reason); err != nil {
		uc.logger.Error("Checkout: failed to mark reservation id=%d as failed: %v", res.ID, err)
	} else {
		res.Status = domain.ReservationFailed
		res.FailureReason = &reason
		uc.publish(ctx, res)
	}
	uc.observe(resultFailed)

	switch {
	case errors.Is(platformErr, platformapi.ErrReservationRejected), errors.Is(platformErr, platformapi.ErrChaletNotFound):
		return fmt.Errorf("%w: %v", ErrReservationRejected, platformErr)
	default:
		return fmt.Errorf("%w: %v", ErrPlatformUnavailable, platformErr)
	}
}

// publish ошибка публикации не отменяет бронирование
func (uc *UseCase) publish(ctx context.Context, res *domain.Reservation) {
	event := events.NewReservationEvent(res, uc.timeProvider.Now())
	if err := uc.publisher.PublishReservation(ctx, event); err != nil {
		uc.logger.Warn("Checkout: failed to publish %s for reservation id=%d: %v", event.Type, res.ID, err)
	}
}

func (uc *UseCase) cleanup(ctx context.Context, selectionID string) {
	if err := uc.drafts.Delete(ctx, selectionID); err != nil {
		uc.logger.Warn("Checkout: failed to delete selection=%s: %v", selectionID, err)
	}
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveCheckout(result)
	}
}
