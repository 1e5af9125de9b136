package start_selection

import "errors"

var (
	// ErrChaletNotFound возвращается, когда шале не найдено
	ErrChaletNotFound = errors.New("start_selection: chalet not found")

	// ErrPlatformUnavailable возвращается, когда площадка недоступна
	ErrPlatformUnavailable = errors.New("start_selection: platform unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("start_selection: internal error")
)
