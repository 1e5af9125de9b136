package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/ChaletBookingService/pkg/daymath"
)

// resolveRange подставляет окно по умолчанию и проверяет ограничения
func resolveRange(req *Request, now time.Time, defaultDays, maxDays int) (time.Time, time.Time, error) {
	from := daymath.StartOfDay(now)
	if req.From != nil {
		from = daymath.StartOfDay(*req.From)
	}

	to := from.AddDate(0, 0, defaultDays)
	if req.To != nil {
		to = daymath.StartOfDay(*req.To)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if days := daymath.DaysBetweenFloor(from, to); days > maxDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days requested, maximum is %d", ErrRangeTooLong, days, maxDays)
	}

	return from, to, nil
}
