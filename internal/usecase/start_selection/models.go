package start_selection

import "github.com/m04kA/ChaletBookingService/internal/service/selections/models"

// Request модель запроса на начало выбора дат
type Request struct {
	ChaletID int64
}

// Response новая сессия выбора
type Response = models.SelectionView
