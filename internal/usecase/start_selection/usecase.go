package start_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/service/chalets"
	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
)

// UseCase начинает новую попытку бронирования
type UseCase struct {
	chalets    ChaletService
	selections SelectionStore
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chalets ChaletService, selections SelectionStore, logger Logger) *UseCase {
	return &UseCase{
		chalets:    chalets,
		selections: selections,
		logger:     logger,
	}
}

// Execute снимает снимок шале и создает сессию в фазе выбора заезда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	chalet, err := uc.chalets.GetSnapshot(ctx, req.ChaletID)
	if err != nil {
		switch {
		case errors.Is(err, chalets.ErrChaletNotFound):
			return nil, ErrChaletNotFound
		case errors.Is(err, chalets.ErrPlatformUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
		default:
			uc.logger.Error("StartSelection: failed to get chalet=%d: %v", req.ChaletID, err)
			return nil, fmt.Errorf("%w: failed to get chalet: %v", ErrInternal, err)
		}
	}

	sess, state, expiresAt, err := uc.selections.Create(ctx, chalet)
	if err != nil {
		uc.logger.Error("StartSelection: failed to create session for chalet=%d: %v", req.ChaletID, err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	return models.NewSelectionView(sess, state, domain.Quote{}, expiresAt), nil
}
