package domain

// Значения бронирования по умолчанию
const (
	DefaultMinNights          = 1
	DefaultAvailabilityWindow = 90  // дней календаря по умолчанию
	MaxAvailabilityWindow     = 730 // 2 года
)

// Ключи session store
const (
	SelectionKeyPrefix = "selection:"
	DraftKeyPrefix     = "booking-draft:"
)

// Формат дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Причины отказа в выборе даты (метки метрик и коды ответов)
const (
	RejectDateBlocked      = "date_blocked"
	RejectMinNights        = "min_nights"
	RejectRangeBlocked     = "range_blocked"
	RejectEndBeforeStart   = "end_before_start"
	RejectStartNotSelected = "start_not_selected"
)
