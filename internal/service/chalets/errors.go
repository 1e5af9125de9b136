package chalets

import "errors"

var (
	// ErrChaletNotFound возвращается, когда шале нет на площадке
	ErrChaletNotFound = errors.New("chalet not found")

	// ErrPlatformUnavailable площадка не ответила; повтор не выполняется
	ErrPlatformUnavailable = errors.New("platform unavailable")
)
