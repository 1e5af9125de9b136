package get_quote

import (
	"github.com/m04kA/ChaletBookingService/internal/api/handlers"
	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
	getQuote "github.com/m04kA/ChaletBookingService/internal/usecase/get_quote"
	"github.com/m04kA/ChaletBookingService/pkg/ptr"
)

// QuoteResponse расчёт стоимости проживания
type QuoteResponse struct {
	ChaletID     int64   `json:"chaletId"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	NightlyPrice int64   `json:"nightlyPrice"`
	MinNights    int     `json:"minNights"`
	Nights       int     `json:"nights"`
	TotalPrice   int64   `json:"totalPrice"`
	Selectable   bool    `json:"selectable"`
	Reason       *string `json:"reason,omitempty"`
	Warning      *string `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ usecase
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	out := &QuoteResponse{
		ChaletID:     resp.ChaletID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		NightlyPrice: resp.NightlyPrice,
		MinNights:    resp.MinNights,
		Nights:       resp.Nights,
		TotalPrice:   resp.TotalPrice,
		Selectable:   resp.Selectable,
	}
	if resp.Rejection != nil {
		out.Reason = ptr.Ptr(selection.RejectionReason(resp.Rejection))
		out.Warning = ptr.Ptr(handlers.RejectionMessage(resp.Rejection))
	}
	return out
}
