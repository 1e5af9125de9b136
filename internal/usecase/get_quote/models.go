package get_quote

import "time"

// Request модель запроса расчёта стоимости
type Request struct {
	ChaletID  int64
	StartDate time.Time
	EndDate   time.Time
}

// Response модель ответа с расчётом
// Rejection заполнен, если диапазон нельзя выбрать (занятые дни, минимальный срок)
type Response struct {
	ChaletID     int64
	StartDate    time.Time
	EndDate      time.Time
	NightlyPrice int64
	MinNights    int
	Nights       int
	TotalPrice   int64
	Selectable   bool
	Rejection    error
}
