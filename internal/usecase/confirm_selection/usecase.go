package confirm_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/quote"
	"github.com/m04kA/ChaletBookingService/internal/service/selections"
)

// UseCase сборка черновика бронирования при подтверждении
type UseCase struct {
	selections   SelectionStore
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(selections SelectionStore, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		selections:   selections,
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

// Execute собирает черновик из завершённого выбора и кладёт его в session store
// Повторное подтверждение перезаписывает черновик актуальными данными
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, state, _, err := uc.selections.Load(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selections.ErrSelectionNotFound) {
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("ConfirmSelection: failed to load selection=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !state.IsComplete() {
		uc.logger.Warn("ConfirmSelection: selection=%s is in phase %s", req.SelectionID, state.Phase())
		return nil, ErrSelectionIncomplete
	}

	if err := validateGuestCount(&sess.Chalet, req.GuestCount); err != nil {
		uc.logger.Warn("ConfirmSelection: selection=%s: %v", req.SelectionID, err)
		return nil, err
	}

	start, _ := state.Start()
	end, _ := state.End()
	q := quote.Compute(start, end, sess.Chalet.Price)

	draft := &domain.BookingDraft{
		SelectionID: sess.ID,
		ChaletID:    sess.Chalet.ID,
		ChaletName:  sess.Chalet.Name,
		StartDate:   start,
		EndDate:     end,
		Nights:      q.Nights,
		GuestCount:  req.GuestCount,
		TotalPrice:  q.TotalPrice,
		CreatedAt:   uc.timeProvider.Now(),
	}

	key, expiresAt, err := uc.selections.SaveDraft(ctx, draft)
	if err != nil {
		uc.logger.Error("ConfirmSelection: failed to save draft for selection=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveDraftCreated()
	}
	uc.logger.Info("ConfirmSelection: draft %s created for chalet=%d, %s..%s, nights=%d, total=%d",
		key, draft.ChaletID, start.Format(domain.DateFormat), end.Format(domain.DateFormat), draft.Nights, draft.TotalPrice)

	return &Response{
		DraftKey:    key,
		SelectionID: draft.SelectionID,
		ChaletID:    draft.ChaletID,
		ChaletName:  draft.ChaletName,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Nights:      draft.Nights,
		GuestCount:  draft.GuestCount,
		TotalPrice:  draft.TotalPrice,
		ExpiresAt:   expiresAt,
	}, nil
}
