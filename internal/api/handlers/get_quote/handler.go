package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	getQuote "github.com/m04kA/ChaletBookingService/internal/usecase/get_quote"
)

const (
	msgInvalidChaletID     = "некорректный ID шале"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates        = "необходимо указать startDate и endDate"
	msgChaletNotFound      = "шале не найдено"
	msgPlatformUnavailable = "площадка бронирования временно недоступна"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chalets/{chaletId}/quote?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chaletID, ok := handlers.PathInt64(r, "chaletId")
	if !ok {
		h.logger.Warn("GET /chalets/{id}/quote - Invalid chalet ID: %s", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	start, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := handlers.QueryDate(r, "endDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if start == nil || end == nil {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getQuote.Request{
		ChaletID:  chaletID,
		StartDate: *start,
		EndDate:   *end,
	})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrMissingDates):
			handlers.RespondBadRequest(w, msgMissingDates)
		case errors.Is(err, getQuote.ErrChaletNotFound):
			h.logger.Warn("GET /chalets/{id}/quote - Chalet not found: chalet_id=%d", chaletID)
			handlers.RespondNotFound(w, msgChaletNotFound)
		case errors.Is(err, getQuote.ErrPlatformUnavailable):
			h.logger.Error("GET /chalets/{id}/quote - Platform unavailable: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /chalets/{id}/quote - Failed to compute quote: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chalets/{id}/quote - Quote computed: chalet_id=%d, nights=%d, total=%d", chaletID, resp.Nights, resp.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
