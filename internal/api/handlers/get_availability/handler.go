package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/ChaletBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidChaletID     = "некорректный ID шале"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgChaletNotFound      = "шале не найдено"
	msgPlatformUnavailable = "площадка бронирования временно недоступна"
	msgInvalidRange        = "дата начала периода позже даты окончания"
	msgRangeTooLong        = "запрошенный период слишком длинный"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chalets/{chaletId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chaletID, ok := handlers.PathInt64(r, "chaletId")
	if !ok {
		h.logger.Warn("GET /chalets/{id}/availability - Invalid chalet ID: %s", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /chalets/{id}/availability - Invalid from: chalet_id=%d, error=%v", chaletID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /chalets/{id}/availability - Invalid to: chalet_id=%d, error=%v", chaletID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		ChaletID: chaletID,
		From:     from,
		To:       to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrChaletNotFound):
			h.logger.Warn("GET /chalets/{id}/availability - Chalet not found: chalet_id=%d", chaletID)
			handlers.RespondNotFound(w, msgChaletNotFound)
		case errors.Is(err, getAvailability.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, getAvailability.ErrRangeTooLong):
			handlers.RespondBadRequest(w, msgRangeTooLong)
		case errors.Is(err, getAvailability.ErrPlatformUnavailable):
			h.logger.Error("GET /chalets/{id}/availability - Platform unavailable: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /chalets/{id}/availability - Failed to get availability: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chalets/{id}/availability - Availability retrieved: chalet_id=%d, blocked=%d", chaletID, len(resp.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
