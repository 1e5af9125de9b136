package models

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

// SelectionView состояние выбора дат вместе с расчётом цены
type SelectionView struct {
	SelectionID string    `json:"selectionId"`
	ChaletID    int64     `json:"chaletId"`
	ChaletName  string    `json:"chaletName"`
	Phase       string    `json:"phase"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	MinNights   int       `json:"minNights"`
	MaxGuests   int       `json:"maxGuests"`
	NightlyRate int64     `json:"nightlyPrice"`
	Nights      int       `json:"nights"`
	TotalPrice  int64     `json:"totalPrice"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// NewSelectionView собирает представление из сессии, состояния и расчёта
func NewSelectionView(s *domain.SelectionSession, state selection.State, q domain.Quote, expiresAt time.Time) *SelectionView {
	view := &SelectionView{
		SelectionID: s.ID,
		ChaletID:    s.Chalet.ID,
		ChaletName:  s.Chalet.Name,
		Phase:       string(state.Phase()),
		MinNights:   s.Chalet.EffectiveMinNights(),
		MaxGuests:   s.Chalet.Guests,
		NightlyRate: s.Chalet.Price,
		Nights:      q.Nights,
		TotalPrice:  q.TotalPrice,
		ExpiresAt:   expiresAt,
	}
	if start, ok := state.Start(); ok {
		formatted := start.Format(domain.DateFormat)
		view.StartDate = &formatted
	}
	if end, ok := state.End(); ok {
		formatted := end.Format(domain.DateFormat)
		view.EndDate = &formatted
	}
	return view
}
