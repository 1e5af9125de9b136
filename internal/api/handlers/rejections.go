package handlers

import (
	"errors"
	"fmt"

	"github.com/m04kA/ChaletBookingService/internal/selection"
)

const (
	msgDateBlocked      = "выбранная дата занята"
	msgRangeBlocked     = "в выбранном периоде есть занятые даты"
	msgEndBeforeStart   = "дата выезда должна быть позже даты заезда"
	msgStartNotSelected = "сначала выберите дату заезда"
	msgMinNightsFormat  = "минимальный срок проживания: %d ноч."
	msgRejected         = "выбор даты отклонён"
)

// RejectionMessage сообщение пользователю для отклонённого выбора даты
func RejectionMessage(err error) string {
	var minErr *selection.MinNightsError
	switch {
	case errors.As(err, &minErr):
		return fmt.Sprintf(msgMinNightsFormat, minErr.Required)
	case errors.Is(err, selection.ErrDateBlocked):
		return msgDateBlocked
	case errors.Is(err, selection.ErrRangeBlocked):
		return msgRangeBlocked
	case errors.Is(err, selection.ErrEndBeforeStart):
		return msgEndBeforeStart
	case errors.Is(err, selection.ErrStartNotSelected):
		return msgStartNotSelected
	default:
		return msgRejected
	}
}
