package get_availability

import (
	"github.com/m04kA/ChaletBookingService/internal/domain"
	getAvailability "github.com/m04kA/ChaletBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse календарь занятости шале
type AvailabilityResponse struct {
	ChaletID     int64    `json:"chaletId"`
	ChaletName   string   `json:"chaletName"`
	NightlyPrice int64    `json:"nightlyPrice"`
	MinNights    int      `json:"minNights"`
	MaxGuests    int      `json:"maxGuests"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	BlockedDates []string `json:"blockedDates"`
}

// FromUseCaseResponse конвертирует ответ usecase
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	blocked := make([]string, 0, len(resp.BlockedDates))
	for _, d := range resp.BlockedDates {
		blocked = append(blocked, d.Format(domain.DateFormat))
	}

	return &AvailabilityResponse{
		ChaletID:     resp.ChaletID,
		ChaletName:   resp.ChaletName,
		NightlyPrice: resp.NightlyPrice,
		MinNights:    resp.MinNights,
		MaxGuests:    resp.MaxGuests,
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		BlockedDates: blocked,
	}
}
