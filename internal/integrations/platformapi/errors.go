package platformapi

import "errors"

var (
	// ErrChaletNotFound шале не найдено на площадке
	ErrChaletNotFound = errors.New("platform api: chalet not found")

	// ErrReservationRejected площадка отклонила бронирование (например, даты заняты)
	ErrReservationRejected = errors.New("platform api: reservation rejected")

	// ErrUnavailable площадка недоступна (сеть, таймаут, 5xx). Повторов нет
	ErrUnavailable = errors.New("platform api: service unavailable")

	// ErrInvalidResponse некорректный ответ площадки
	ErrInvalidResponse = errors.New("platform api: invalid response")

	// ErrInternal внутренняя ошибка клиента
	ErrInternal = errors.New("platform api client: internal error")
)
