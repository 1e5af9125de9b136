package get_availability

import "time"

// Request модель запроса календаря занятости
type Request struct {
	ChaletID int64
	From     *time.Time // по умолчанию сегодня
	To       *time.Time // по умолчанию From + окно из конфигурации
}

// Response модель ответа с занятыми днями
type Response struct {
	ChaletID     int64
	ChaletName   string
	NightlyPrice int64
	MinNights    int
	MaxGuests    int
	From         time.Time
	To           time.Time
	BlockedDates []time.Time
}
