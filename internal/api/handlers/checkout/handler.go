package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	"github.com/m04kA/ChaletBookingService/internal/api/middleware"
	"github.com/m04kA/ChaletBookingService/internal/usecase/checkout"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса, ожидается {\"selectionId\": \"...\"}"
	msgUnauthorized        = "требуется авторизация"
	msgDraftNotFound       = "черновик бронирования не найден или истёк"
	msgDatesTaken          = "выбранные даты уже забронированы"
	msgReservationRejected = "площадка отклонила бронирование"
	msgPlatformUnavailable = "площадка бронирования временно недоступна, попробуйте позже"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - Unauthorized")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		case errors.Is(err, checkout.ErrDraftNotFound):
			h.logger.Warn("POST /checkout - Draft not found: user_id=%d, selection_id=%s", userID, req.SelectionID)
			handlers.RespondNotFound(w, msgDraftNotFound)
		case errors.Is(err, checkout.ErrDatesTaken):
			h.logger.Warn("POST /checkout - Dates taken: user_id=%d, selection_id=%s", userID, req.SelectionID)
			handlers.RespondConflict(w, msgDatesTaken)
		case errors.Is(err, checkout.ErrReservationRejected):
			h.logger.Warn("POST /checkout - Rejected by platform: user_id=%d, selection_id=%s, error=%v", userID, req.SelectionID, err)
			handlers.RespondConflict(w, msgReservationRejected)
		case errors.Is(err, checkout.ErrPlatformUnavailable):
			h.logger.Error("POST /checkout - Platform unavailable: user_id=%d, selection_id=%s, error=%v", userID, req.SelectionID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("POST /checkout - Failed to checkout: user_id=%d, selection_id=%s, error=%v", userID, req.SelectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Reservation confirmed: reservation_id=%d, user_id=%d, chalet_id=%d", resp.ReservationID, userID, resp.ChaletID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
