package checkout

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновика нет, он истёк или уже использован
	ErrDraftNotFound = errors.New("checkout: booking draft not found")

	// ErrDatesTaken возвращается, когда даты уже заняты другим бронированием
	ErrDatesTaken = errors.New("checkout: dates are already reserved")

	// ErrReservationRejected возвращается, когда площадка отклонила бронирование
	ErrReservationRejected = errors.New("checkout: reservation rejected by platform")

	// ErrPlatformUnavailable возвращается, когда площадка недоступна; бронирование помечено failed
	ErrPlatformUnavailable = errors.New("checkout: platform unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("checkout: internal error")
)
