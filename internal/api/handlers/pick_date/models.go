package pick_date

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
	"github.com/m04kA/ChaletBookingService/pkg/types"
)

// PickDateRequest тело запроса выбора даты
type PickDateRequest struct {
	Date types.Date `json:"date"`
}

func (r *PickDateRequest) date() (time.Time, bool) {
	if r.Date.IsZero() {
		return time.Time{}, false
	}
	return r.Date.Time(), true
}

// RejectionResponse данные отклонённого выбора: причина и неизменённое состояние
type RejectionResponse struct {
	Reason    string                `json:"reason"`
	Selection *models.SelectionView `json:"selection"`
}
