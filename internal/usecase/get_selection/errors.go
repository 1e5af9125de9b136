package get_selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда сессия не найдена или истекла
	ErrSelectionNotFound = errors.New("get_selection: selection not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_selection: internal error")
)
