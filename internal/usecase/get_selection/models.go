package get_selection

import "github.com/m04kA/ChaletBookingService/internal/service/selections/models"

type Request struct {
	SelectionID string
}

type Response = models.SelectionView
