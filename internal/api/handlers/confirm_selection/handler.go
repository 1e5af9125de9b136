package confirm_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	confirmSelection "github.com/m04kA/ChaletBookingService/internal/usecase/confirm_selection"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса, ожидается {\"guestCount\": N}"
	msgInvalidSelectionID  = "некорректный ID выбора"
	msgSelectionNotFound   = "выбор дат не найден или истёк"
	msgSelectionIncomplete = "выберите даты заезда и выезда"
	msgInvalidGuestCount   = "количество гостей превышает вместимость шале"
)

type Handler struct {
	useCase ConfirmSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]
	if selectionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	var req ConfirmSelectionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/confirm - Invalid request body: selection_id=%s, error=%v", selectionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(selectionID))
	if err != nil {
		switch {
		case errors.Is(err, confirmSelection.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/confirm - Selection not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
		case errors.Is(err, confirmSelection.ErrSelectionIncomplete):
			handlers.RespondConflict(w, msgSelectionIncomplete)
		case errors.Is(err, confirmSelection.ErrInvalidGuestCount):
			handlers.RespondUnprocessable(w, msgInvalidGuestCount)
		default:
			h.logger.Error("POST /selections/{id}/confirm - Failed to confirm selection: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/confirm - Draft created: selection_id=%s, chalet_id=%d, total=%d", selectionID, resp.ChaletID, resp.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
