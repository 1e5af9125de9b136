package pick_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	pickDate "github.com/m04kA/ChaletBookingService/internal/usecase/pick_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается {\"date\": \"YYYY-MM-DD\"}"
	msgInvalidSelectionID = "некорректный ID выбора"
	msgMissingDate        = "необходимо указать дату"
	msgInvalidTarget      = "можно выбрать только дату заезда (start) или выезда (end)"
	msgSelectionNotFound  = "выбор дат не найден или истёк"
)

type Handler struct {
	useCase PickDateUseCase
	logger  Logger
}

func NewHandler(useCase PickDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/{target:start|end}
// Отклонённый выбор возвращает 422 с причиной и неизменённым состоянием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	selectionID := vars["selectionId"]
	if selectionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}
	target := pickDate.Target(vars["target"])

	var req PickDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/%s - Invalid request body: selection_id=%s, error=%v", target, selectionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	date, ok := req.date()
	if !ok {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &pickDate.Request{
		SelectionID: selectionID,
		Target:      target,
		Date:        date,
	})
	if err != nil {
		var rejected *pickDate.RejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Info("POST /selections/{id}/%s - Pick rejected: selection_id=%s, reason=%s", target, selectionID, rejected.Reason)
			handlers.RespondErrorWithData(w, http.StatusUnprocessableEntity, handlers.RejectionMessage(rejected.Cause), &RejectionResponse{
				Reason:    rejected.Reason,
				Selection: rejected.Selection,
			})
		case errors.Is(err, pickDate.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/%s - Selection not found: selection_id=%s", target, selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
		case errors.Is(err, pickDate.ErrInvalidTarget):
			handlers.RespondBadRequest(w, msgInvalidTarget)
		case errors.Is(err, pickDate.ErrMissingDate):
			handlers.RespondBadRequest(w, msgMissingDate)
		default:
			h.logger.Error("POST /selections/{id}/%s - Failed to pick date: selection_id=%s, error=%v", target, selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/%s - Date picked: selection_id=%s, phase=%s", target, selectionID, resp.Phase)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
