package session

import "errors"

var (
	// ErrNotFound ключ отсутствует или истёк
	ErrNotFound = errors.New("session.store: key not found")

	// ErrStore ошибка хранилища
	ErrStore = errors.New("session.store: storage error")

	// ErrEncode ошибка сериализации значения
	ErrEncode = errors.New("session.store: failed to encode value")

	// ErrDecode ошибка десериализации значения
	ErrDecode = errors.New("session.store: failed to decode value")
)
