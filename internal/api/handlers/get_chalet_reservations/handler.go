package get_chalet_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	"github.com/m04kA/ChaletBookingService/internal/api/middleware"
	"github.com/m04kA/ChaletBookingService/internal/service/reservations"
	"github.com/m04kA/ChaletBookingService/internal/service/reservations/models"
	"github.com/m04kA/ChaletBookingService/pkg/ptr"
)

const (
	msgInvalidChaletID = "некорректный ID шале"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidStatus   = "некорректный статус, допустимо: pending, confirmed, failed"
	msgAccessDenied    = "нет доступа к бронированиям"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/chalets/{chaletId}/reservations?status=confirmed
// Возвращает только бронирования текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chaletID, ok := handlers.PathInt64(r, "chaletId")
	if !ok {
		h.logger.Warn("GET /chalets/{id}/reservations - Invalid chalet ID: %s", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListByChaletRequest{UserID: userID, ChaletID: chaletID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	list, err := h.service.ListByChalet(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /chalets/{id}/reservations - Access denied: chalet_id=%d, user_id=%d", chaletID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /chalets/{id}/reservations - Failed to list reservations: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chalets/{id}/reservations - Reservations retrieved: chalet_id=%d, user_id=%d, total=%d", chaletID, userID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
