package get_availability

import "errors"

var (
	// ErrChaletNotFound возвращается, когда шале не найдено
	ErrChaletNotFound = errors.New("get_availability: chalet not found")

	// ErrPlatformUnavailable возвращается, когда площадка недоступна
	ErrPlatformUnavailable = errors.New("get_availability: platform unavailable")

	// ErrInvalidRange возвращается, когда from позже to
	ErrInvalidRange = errors.New("get_availability: from is after to")

	// ErrRangeTooLong возвращается, когда окно календаря превышает максимум
	ErrRangeTooLong = errors.New("get_availability: range is too long")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_availability: internal error")
)
