package pick_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/availability"
	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/quote"
	"github.com/m04kA/ChaletBookingService/internal/selection"
	"github.com/m04kA/ChaletBookingService/internal/service/selections"
	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
)

// UseCase применяет выбор даты заезда/выезда к сессии
type UseCase struct {
	selections        SelectionStore
	checkRangeOverlap bool
	metrics           Metrics
	logger            Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(selections SelectionStore, checkRangeOverlap bool, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		selections:        selections,
		checkRangeOverlap: checkRangeOverlap,
		metrics:           metrics,
		logger:            logger,
	}
}

// Execute загружает сессию, применяет переход и сохраняет результат
// Отклонённый выбор возвращает *RejectedError с неизменённым состоянием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sess, state, expiresAt, err := uc.selections.Load(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selections.ErrSelectionNotFound) {
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("PickDate: failed to load selection=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to load selection: %v", ErrInternal, err)
	}

	// индекс строится по снимку, зафиксированному при старте сессии
	sel := selection.NewSelector(&sess.Chalet, availability.Build(sess.Chalet.ReservedPeriods), uc.checkRangeOverlap)

	var next selection.State
	switch req.Target {
	case TargetStart:
		next, err = sel.PickStart(state, req.Date)
	case TargetEnd:
		next, err = sel.PickEnd(state, req.Date)
	}

	if err != nil {
		if !selection.IsRejection(err) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		reason := selection.RejectionReason(err)
		if uc.metrics != nil {
			uc.metrics.ObserveSelectionRejection(reason)
		}
		uc.logger.Info("PickDate: selection=%s %s=%s rejected: %s",
			req.SelectionID, req.Target, req.Date.Format(domain.DateFormat), reason)

		return nil, &RejectedError{
			Cause:     err,
			Reason:    reason,
			Selection: models.NewSelectionView(sess, state, quote.ForState(state, sess.Chalet.Price), expiresAt),
		}
	}

	expiresAt, err = uc.selections.Save(ctx, sess, next)
	if err != nil {
		uc.logger.Error("PickDate: failed to save selection=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	q := quote.ForState(next, sess.Chalet.Price)
	uc.logger.Info("PickDate: selection=%s phase=%s nights=%d total=%d",
		req.SelectionID, next.Phase(), q.Nights, q.TotalPrice)

	return models.NewSelectionView(sess, next, q, expiresAt), nil
}
