package start_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	startSelection "github.com/m04kA/ChaletBookingService/internal/usecase/start_selection"
)

const (
	msgInvalidChaletID     = "некорректный ID шале"
	msgChaletNotFound      = "шале не найдено"
	msgPlatformUnavailable = "площадка бронирования временно недоступна"
)

type Handler struct {
	useCase StartSelectionUseCase
	logger  Logger
}

func NewHandler(useCase StartSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chalets/{chaletId}/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chaletID, ok := handlers.PathInt64(r, "chaletId")
	if !ok {
		h.logger.Warn("POST /chalets/{id}/selections - Invalid chalet ID: %s", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &startSelection.Request{ChaletID: chaletID})
	if err != nil {
		switch {
		case errors.Is(err, startSelection.ErrChaletNotFound):
			h.logger.Warn("POST /chalets/{id}/selections - Chalet not found: chalet_id=%d", chaletID)
			handlers.RespondNotFound(w, msgChaletNotFound)
		case errors.Is(err, startSelection.ErrPlatformUnavailable):
			h.logger.Error("POST /chalets/{id}/selections - Platform unavailable: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("POST /chalets/{id}/selections - Failed to start selection: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chalets/{id}/selections - Selection started: chalet_id=%d, selection_id=%s", chaletID, resp.SelectionID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
