package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/availability"
	"github.com/m04kA/ChaletBookingService/internal/quote"
	"github.com/m04kA/ChaletBookingService/internal/selection"
	"github.com/m04kA/ChaletBookingService/internal/service/chalets"
)

// UseCase расчёт стоимости без создания сессии
type UseCase struct {
	chalets           ChaletService
	checkRangeOverlap bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chalets ChaletService, checkRangeOverlap bool, logger Logger) *UseCase {
	return &UseCase{
		chalets:           chalets,
		checkRangeOverlap: checkRangeOverlap,
		logger:            logger,
	}
}

// Execute считает ночи и сумму и проверяет, прошёл бы такой выбор через селектор
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	chalet, err := uc.chalets.GetSnapshot(ctx, req.ChaletID)
	if err != nil {
		switch {
		case errors.Is(err, chalets.ErrChaletNotFound):
			return nil, ErrChaletNotFound
		case errors.Is(err, chalets.ErrPlatformUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
		default:
			uc.logger.Error("GetQuote: failed to get chalet=%d: %v", req.ChaletID, err)
			return nil, fmt.Errorf("%w: failed to get chalet: %v", ErrInternal, err)
		}
	}

	sel := selection.NewSelector(chalet, availability.Build(chalet.ReservedPeriods), uc.checkRangeOverlap)

	state, rejection := sel.PickStart(selection.New(), req.StartDate)
	if rejection == nil {
		state, rejection = sel.PickEnd(state, req.EndDate)
	}
	if rejection != nil && !selection.IsRejection(rejection) {
		return nil, fmt.Errorf("%w: %v", ErrInternal, rejection)
	}

	q := quote.Compute(req.StartDate, req.EndDate, chalet.Price)

	uc.logger.Info("GetQuote: chalet=%d, nights=%d, total=%d, selectable=%t",
		chalet.ID, q.Nights, q.TotalPrice, rejection == nil)

	return &Response{
		ChaletID:     chalet.ID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NightlyPrice: chalet.Price,
		MinNights:    sel.MinNights,
		Nights:       q.Nights,
		TotalPrice:   q.TotalPrice,
		Selectable:   rejection == nil && state.IsComplete(),
		Rejection:    rejection,
	}, nil
}
