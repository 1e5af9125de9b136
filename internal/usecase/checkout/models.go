package checkout

import "time"

// Request модель запроса checkout
type Request struct {
	UserID      int64
	SelectionID string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID int64
	ChaletID      int64
	StartDate     time.Time
	EndDate       time.Time
	Nights        int
	GuestCount    int
	TotalPrice    int64
	Status        string
	ExternalID    *string
	CreatedAt     time.Time
}

// Результаты checkout (метки метрик)
const (
	resultConfirmed   = "confirmed"
	resultFailed      = "failed"
	resultDatesTaken  = "dates_taken"
	resultNoDraft     = "no_draft"
	resultInternalErr = "error"
)
