package models

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

// ListByChaletRequest запрос на получение бронирований шале
type ListByChaletRequest struct {
	UserID   int64   `json:"userId"`
	ChaletID int64   `json:"chaletId"`
	Status   *string `json:"status,omitempty"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ChaletID      int64     `json:"chaletId"`
	StartDate     string    `json:"startDate"` // "2024-06-01"
	EndDate       string    `json:"endDate"`
	Nights        int       `json:"nights"`
	GuestCount    int       `json:"guestCount"`
	TotalPrice    int64     `json:"totalPrice"`
	Status        string    `json:"status"`
	ExternalID    *string   `json:"externalId,omitempty"`
	FailureReason *string   `json:"failureReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		ChaletID:      r.ChaletID,
		StartDate:     r.StartDate.Format(domain.DateFormat),
		EndDate:       r.EndDate.Format(domain.DateFormat),
		Nights:        r.Nights,
		GuestCount:    r.GuestCount,
		TotalPrice:    r.TotalPrice,
		Status:        string(r.Status),
		ExternalID:    r.ExternalID,
		FailureReason: r.FailureReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список
func FromDomainReservations(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}
