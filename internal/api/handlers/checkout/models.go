package checkout

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/usecase/checkout"
)

// CheckoutRequest тело запроса checkout
type CheckoutRequest struct {
	SelectionID string `json:"selectionId" validate:"required"`
}

// ReservationResponse созданное бронирование
type ReservationResponse struct {
	ID         int64     `json:"id"`
	ChaletID   int64     `json:"chaletId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Nights     int       `json:"nights"`
	GuestCount int       `json:"guestCount"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	ExternalID *string   `json:"externalId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос usecase
func (r *CheckoutRequest) ToUseCaseRequest(userID int64) *checkout.Request {
	return &checkout.Request{
		UserID:      userID,
		SelectionID: r.SelectionID,
	}
}

// FromUseCaseResponse конвертирует ответ usecase
func FromUseCaseResponse(resp *checkout.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ReservationID,
		ChaletID:   resp.ChaletID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Nights:     resp.Nights,
		GuestCount: resp.GuestCount,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		ExternalID: resp.ExternalID,
		CreatedAt:  resp.CreatedAt,
	}
}
