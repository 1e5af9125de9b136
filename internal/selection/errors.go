package selection

import (
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

var (
	// ErrDateBlocked выбранная дата занята
	ErrDateBlocked = errors.New("selection: date is not available")

	// ErrStartNotSelected попытка выбрать выезд до выбора заезда
	ErrStartNotSelected = errors.New("selection: check-in date is not selected")

	// ErrEndBeforeStart дата выезда не позже даты заезда
	ErrEndBeforeStart = errors.New("selection: check-out must be after check-in")

	// ErrMinNights нарушено минимальное количество ночей
	ErrMinNights = errors.New("selection: minimum stay not reached")

	// ErrRangeBlocked в выбранном диапазоне есть занятые даты
	ErrRangeBlocked = errors.New("selection: range contains unavailable dates")

	// ErrCorruptState сохранённое состояние не может быть восстановлено
	ErrCorruptState = errors.New("selection: corrupt state")
)

// MinNightsError содержит требуемый минимум для сообщения пользователю
type MinNightsError struct {
	Required int
	Selected int
}

func (e *MinNightsError) Error() string {
	return fmt.Sprintf("%v: requires at least %d nights, selected %d", ErrMinNights, e.Required, e.Selected)
}

func (e *MinNightsError) Unwrap() error {
	return ErrMinNights
}

// RejectionReason код причины отказа (метрики и ответ API)
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrDateBlocked):
		return domain.RejectDateBlocked
	case errors.Is(err, ErrMinNights):
		return domain.RejectMinNights
	case errors.Is(err, ErrRangeBlocked):
		return domain.RejectRangeBlocked
	case errors.Is(err, ErrEndBeforeStart):
		return domain.RejectEndBeforeStart
	case errors.Is(err, ErrStartNotSelected):
		return domain.RejectStartNotSelected
	default:
		return ""
	}
}

// IsRejection true для отказов валидации, после которых выбор можно продолжить
func IsRejection(err error) bool {
	return RejectionReason(err) != ""
}
