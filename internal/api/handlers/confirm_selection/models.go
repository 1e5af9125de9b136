package confirm_selection

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	confirmSelection "github.com/m04kA/ChaletBookingService/internal/usecase/confirm_selection"
)

// ConfirmSelectionRequest тело запроса "забронировать"
type ConfirmSelectionRequest struct {
	GuestCount int `json:"guestCount" validate:"required,min=1"`
}

// DraftResponse черновик бронирования, ожидающий checkout
type DraftResponse struct {
	DraftKey    string    `json:"draftKey"`
	SelectionID string    `json:"selectionId"`
	ChaletID    int64     `json:"chaletId"`
	ChaletName  string    `json:"chaletName"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Nights      int       `json:"nights"`
	GuestCount  int       `json:"guestCount"`
	TotalPrice  int64     `json:"totalPrice"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос usecase
func (r *ConfirmSelectionRequest) ToUseCaseRequest(selectionID string) *confirmSelection.Request {
	return &confirmSelection.Request{
		SelectionID: selectionID,
		GuestCount:  r.GuestCount,
	}
}

// FromUseCaseResponse конвертирует ответ usecase
func FromUseCaseResponse(resp *confirmSelection.Response) *DraftResponse {
	return &DraftResponse{
		DraftKey:    resp.DraftKey,
		SelectionID: resp.SelectionID,
		ChaletID:    resp.ChaletID,
		ChaletName:  resp.ChaletName,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Nights:      resp.Nights,
		GuestCount:  resp.GuestCount,
		TotalPrice:  resp.TotalPrice,
		ExpiresAt:   resp.ExpiresAt,
	}
}
