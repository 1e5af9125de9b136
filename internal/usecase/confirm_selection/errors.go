package confirm_selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда сессия не найдена или истекла
	ErrSelectionNotFound = errors.New("confirm_selection: selection not found")

	// ErrSelectionIncomplete возвращается, когда не выбраны обе даты
	ErrSelectionIncomplete = errors.New("confirm_selection: selection is not complete")

	// ErrInvalidGuestCount возвращается, когда число гостей вне [1, вместимость шале]
	ErrInvalidGuestCount = errors.New("confirm_selection: invalid guest count")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("confirm_selection: internal error")
)
