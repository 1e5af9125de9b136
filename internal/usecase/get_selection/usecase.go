package get_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/quote"
	"github.com/m04kA/ChaletBookingService/internal/service/selections"
	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
)

type UseCase struct {
	selections SelectionStore
	logger     Logger
}

func NewUseCase(selections SelectionStore, logger Logger) *UseCase {
	return &UseCase{selections: selections, logger: logger}
}

// Execute состояние сессии; цена пересчитывается при каждом чтении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, state, expiresAt, err := uc.selections.Load(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selections.ErrSelectionNotFound) {
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("GetSelection: failed to load selection=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.NewSelectionView(sess, state, quote.ForState(state, sess.Chalet.Price), expiresAt), nil
}
