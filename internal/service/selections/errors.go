package selections

import "errors"

var (
	// ErrSelectionNotFound сессия выбора не найдена или истекла
	ErrSelectionNotFound = errors.New("selection session not found")

	// ErrDraftNotFound черновик бронирования не найден, истёк или уже использован
	ErrDraftNotFound = errors.New("booking draft not found")

	// ErrCorruptSession сохранённая сессия не восстанавливается
	ErrCorruptSession = errors.New("selection session is corrupt")

	// ErrInternal ошибка хранилища сессий
	ErrInternal = errors.New("selections: internal error")
)
