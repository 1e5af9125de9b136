package get_chalet_reservations

import (
	"context"

	"github.com/m04kA/ChaletBookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListByChalet(ctx context.Context, req *models.ListByChaletRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
