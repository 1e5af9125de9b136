// Package daymath два способа подсчёта дней, используемые при бронировании.
//
// DaysBetweenFloor отвечает на вопрос "прошло ли N полных суток" и используется
// для минимального срока проживания. NightsCeil считает ночи к оплате.
// Для разницы не кратной суткам они расходятся, оба сохранены намеренно.
//
// Оба считают модуль разницы времени, делённый на 24 часа. Сутки другой длины
// (переход на летнее время) отдельно не обрабатываются: 23 часа дают 0 при
// округлении вниз и 1 при округлении вверх.
package daymath

import (
	"math"
	"time"
)

// Day длительность суток, используемая в расчетах
const Day = 24 * time.Hour

// DaysBetweenFloor floor(|b-a| / 24h)
func DaysBetweenFloor(a, b time.Time) int {
	return int(math.Floor(absDays(a, b)))
}

// NightsCeil ceil(|b-a| / 24h)
func NightsCeil(a, b time.Time) int {
	return int(math.Ceil(absDays(a, b)))
}

// StartOfDay обнуляет время, сохраняя location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay сравнивает только год, месяц и день
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Key ключ календарного дня в формате YYYY-MM-DD
func Key(t time.Time) string {
	return t.Format("2006-01-02")
}

// BeforeDay true, если день a строго раньше дня b (время игнорируется)
func BeforeDay(a, b time.Time) bool {
	return Key(a) < Key(b)
}

func absDays(a, b time.Time) float64 {
	delta := b.Sub(a)
	if delta < 0 {
		delta = -delta
	}
	return float64(delta) / float64(Day)
}
