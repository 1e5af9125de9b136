package platformapi

import "time"

// envelope общий формат ответа площадки
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

type chaletPayload struct {
	ID              int64                   `json:"id"`
	Name            string                  `json:"name"`
	Price           int64                   `json:"price"`
	MinNights       int                     `json:"minNights"`
	Guests          int                     `json:"guests"`
	ReservedPeriods []reservedPeriodPayload `json:"reservedPeriods"`
}

type reservedPeriodPayload struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// CreateReservationRequest бронирование, передаваемое площадке при checkout
type CreateReservationRequest struct {
	ChaletID   int64     `json:"chaletId"`
	UserID     int64     `json:"userId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Nights     int       `json:"nights"`
	GuestCount int       `json:"guestCount"`
	TotalPrice int64     `json:"totalPrice"`
	RequestAt  time.Time `json:"requestedAt"`
}

// CreateReservationResult ответ площадки
type CreateReservationResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
