package get_quote

import "errors"

var (
	// ErrChaletNotFound возвращается, когда шале не найдено
	ErrChaletNotFound = errors.New("get_quote: chalet not found")

	// ErrPlatformUnavailable возвращается, когда площадка недоступна
	ErrPlatformUnavailable = errors.New("get_quote: platform unavailable")

	// ErrMissingDates возвращается, когда не указаны обе даты
	ErrMissingDates = errors.New("get_quote: startDate and endDate are required")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_quote: internal error")
)
