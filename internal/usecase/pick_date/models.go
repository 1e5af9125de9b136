package pick_date

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
)

// Target какую дату выбирает пользователь
type Target string

const (
	TargetStart Target = "start"
	TargetEnd   Target = "end"
)

// Request модель запроса выбора даты
type Request struct {
	SelectionID string
	Target      Target
	Date        time.Time
}

// Response состояние после выбора вместе с ценой
type Response = models.SelectionView
