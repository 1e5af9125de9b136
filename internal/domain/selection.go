package domain

import "time"

// SelectionPhase фаза двухшагового выбора дат
type SelectionPhase string

const (
	PhaseSelectingStart SelectionPhase = "selecting_start"
	PhaseSelectingEnd   SelectionPhase = "selecting_end"
	PhaseComplete       SelectionPhase = "complete"
)

// IsValid true для известной фазы
func (p SelectionPhase) IsValid() bool {
	switch p {
	case PhaseSelectingStart, PhaseSelectingEnd, PhaseComplete:
		return true
	default:
		return false
	}
}

// SelectionSession попытка бронирования одного шале, хранится на сервере
// Снимок шале фиксируется один раз при старте сессии
type SelectionSession struct {
	ID        string
	Chalet    Chalet
	CreatedAt time.Time
}

// SessionKey ключ сессии выбора дат в session store
func SessionKey(selectionID string) string {
	return SelectionKeyPrefix + selectionID
}

// DraftKey ключ черновика бронирования в session store
func DraftKey(selectionID string) string {
	return DraftKeyPrefix + selectionID
}
