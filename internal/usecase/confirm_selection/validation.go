package confirm_selection

import (
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

func validateGuestCount(chalet *domain.Chalet, guestCount int) error {
	if !chalet.AcceptsGuests(guestCount) {
		return fmt.Errorf("%w: %d guests, chalet accepts 1..%d", ErrInvalidGuestCount, guestCount, chalet.Guests)
	}
	return nil
}
