package domain

import "time"

// ReservedPeriod период, когда шале занято
// Обе границы включительно, с точностью до дня
type ReservedPeriod struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// IsReversed ошибка данных площадки: выезд раньше заезда
func (p ReservedPeriod) IsReversed() bool {
	return p.CheckOut.Before(p.CheckIn)
}

// Chalet снимок записи шале с площадки, только для чтения
type Chalet struct {
	ID              int64
	Name            string
	Price           int64 // за ночь, в целых единицах валюты
	MinNights       int
	Guests          int
	ReservedPeriods []ReservedPeriod
}

// EffectiveMinNights минимальный срок не меньше DefaultMinNights, даже если запись некорректна
func (c *Chalet) EffectiveMinNights() int {
	if c.MinNights < DefaultMinNights {
		return DefaultMinNights
	}
	return c.MinNights
}

// AcceptsGuests проверяет число гостей по вместимости шале
func (c *Chalet) AcceptsGuests(count int) bool {
	return count >= 1 && count <= c.Guests
}
