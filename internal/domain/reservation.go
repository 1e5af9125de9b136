package domain

import "time"

// ReservationStatus статус локальной записи checkout
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationFailed    ReservationStatus = "failed"
)

// Reservation локальная запись бронирования, переданного в platform API
type Reservation struct {
	ID         int64
	UserID     int64
	ChaletID   int64
	StartDate  time.Time
	EndDate    time.Time
	Nights     int
	GuestCount int
	TotalPrice int64
	Status     ReservationStatus

	ExternalID    *string // id на стороне platform API
	FailureReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive true, если бронирование занимает даты
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

// ToReservedPeriod занятый период проживания
// День выезда остаётся свободным для следующего гостя
func (r *Reservation) ToReservedPeriod() ReservedPeriod {
	return ReservedPeriod{CheckIn: r.StartDate, CheckOut: r.EndDate.AddDate(0, 0, -1)}
}

// ActiveReservationStatuses статусы, которые блокируют даты
var ActiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
}

// ParseReservationStatus валидирует строковый статус
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	switch status {
	case ReservationPending, ReservationConfirmed, ReservationFailed:
		return status, true
	default:
		return "", false
	}
}
