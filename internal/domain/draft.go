package domain

import "time"

// BookingDraft собирается при нажатии "забронировать", checkout использует его один раз
type BookingDraft struct {
	SelectionID string
	ChaletID    int64
	ChaletName  string
	StartDate   time.Time
	EndDate     time.Time
	Nights      int
	GuestCount  int
	TotalPrice  int64
	CreatedAt   time.Time
}
