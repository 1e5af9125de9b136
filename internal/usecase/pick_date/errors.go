package pick_date

import (
	"errors"

	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
)

var (
	// ErrSelectionNotFound возвращается, когда сессия не найдена или истекла
	ErrSelectionNotFound = errors.New("pick_date: selection not found")

	// ErrInvalidTarget возвращается при неизвестной цели выбора
	ErrInvalidTarget = errors.New("pick_date: target must be start or end")

	// ErrMissingDate возвращается, когда дата не указана
	ErrMissingDate = errors.New("pick_date: date is required")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("pick_date: internal error")
)

// RejectedError отклонённый выбор; состояние сессии не изменилось
// Cause - одна из ошибок пакета selection (ErrDateBlocked, *MinNightsError, ...)
type RejectedError struct {
	Cause     error
	Reason    string
	Selection *models.SelectionView
}

func (e *RejectedError) Error() string {
	return "pick_date: rejected: " + e.Cause.Error()
}

func (e *RejectedError) Unwrap() error {
	return e.Cause
}
