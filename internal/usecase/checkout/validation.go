package checkout

import (
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.SelectionID == "" {
		return fmt.Errorf("%w: selection id is required", ErrInvalidInput)
	}
	return nil
}

// validateDraft черновик из хранилища мог быть повреждён
func validateDraft(d *domain.BookingDraft) error {
	if d.ChaletID <= 0 || d.Nights <= 0 || d.GuestCount <= 0 || !d.EndDate.After(d.StartDate) {
		return fmt.Errorf("%w: malformed draft for selection=%s", ErrInternal, d.SelectionID)
	}
	return nil
}
