package confirm_selection

import "time"

// Request модель запроса "забронировать"
type Request struct {
	SelectionID string
	GuestCount  int
}

// Response собранный черновик бронирования
type Response struct {
	DraftKey    string
	SelectionID string
	ChaletID    int64
	ChaletName  string
	StartDate   time.Time
	EndDate     time.Time
	Nights      int
	GuestCount  int
	TotalPrice  int64
	ExpiresAt   time.Time
}
