package get_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	getSelection "github.com/m04kA/ChaletBookingService/internal/usecase/get_selection"
)

const (
	msgInvalidSelectionID = "некорректный ID выбора"
	msgSelectionNotFound  = "выбор дат не найден или истёк"
)

type Handler struct {
	useCase GetSelectionUseCase
	logger  Logger
}

func NewHandler(useCase GetSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]
	if selectionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getSelection.Request{SelectionID: selectionID})
	if err != nil {
		if errors.Is(err, getSelection.ErrSelectionNotFound) {
			h.logger.Warn("GET /selections/{id} - Selection not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
			return
		}
		h.logger.Error("GET /selections/{id} - Failed to get selection: selection_id=%s, error=%v", selectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
