package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/availability"
	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/service/chalets"
)

// UseCase use case календаря занятости шале
type UseCase struct {
	chalets      ChaletService
	defaultDays  int
	maxDays      int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// defaultDays и maxDays <= 0 заменяются значениями по умолчанию
func NewUseCase(chalets ChaletService, defaultDays, maxDays int, logger Logger) *UseCase {
	if defaultDays <= 0 {
		defaultDays = domain.DefaultAvailabilityWindow
	}
	if maxDays <= 0 {
		maxDays = domain.MaxAvailabilityWindow
	}
	return &UseCase{
		chalets:      chalets,
		defaultDays:  defaultDays,
		maxDays:      maxDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает занятые дни шале в окне [from, to]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	from, to, err := resolveRange(req, uc.timeProvider.Now(), uc.defaultDays, uc.maxDays)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid range for chalet=%d: %v", req.ChaletID, err)
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
			uc.logger.Error("GetAvailability: failed to get chalet=%d: %v", req.ChaletID, err)
			return nil, fmt.Errorf("%w: failed to get chalet: %v", ErrInternal, err)
		}
	}

	idx := availability.Build(chalet.ReservedPeriods)
	blocked := idx.BlockedDays(from, to)

	uc.logger.Info("GetAvailability: chalet=%d, %s..%s, %d blocked days",
		chalet.ID, from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(blocked))

	return &Response{
		ChaletID:     chalet.ID,
		ChaletName:   chalet.Name,
		NightlyPrice: chalet.Price,
		MinNights:    chalet.EffectiveMinNights(),
		MaxGuests:    chalet.Guests,
		From:         from,
		To:           to,
		BlockedDates: blocked,
	}, nil
}
