// Package availability раскладывает занятые периоды в множество занятых календарных дней
package availability

import (
	"sort"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/pkg/daymath"
	"github.com/m04kA/ChaletBookingService/pkg/types"
)

// RawPeriod занятый период в виде, полученном от platform API (ISO строки)
type RawPeriod struct {
	CheckIn  string
	CheckOut string
}

// Index множество занятых дней. Строится один раз и не изменяется
type Index struct {
	blocked map[string]struct{}
	skipped int
}

// Build раскладывает каждый период по дням, обе границы включительно
// Перевёрнутые периоды и периоды без даты выезда не учитываются
func Build(periods []domain.ReservedPeriod) *Index {
	idx := &Index{blocked: make(map[string]struct{})}

	for _, p := range periods {
		if p.CheckIn.IsZero() || p.CheckOut.IsZero() {
			idx.skipped++
			continue
		}

		last := daymath.StartOfDay(p.CheckOut)
		for current := daymath.StartOfDay(p.CheckIn); !current.After(last); current = current.AddDate(0, 0, 1) {
			idx.blocked[daymath.Key(current)] = struct{}{}
		}
	}

	return idx
}

// BuildFromRaw разбирает ISO даты и строит индекс
// Период с некорректной датой пропускается, календарь при этом строится
func BuildFromRaw(raw []RawPeriod) *Index {
	periods, skipped := ParsePeriods(raw)
	idx := Build(periods)
	idx.skipped += skipped
	return idx
}

// ParsePeriods конвертирует периоды и возвращает число отброшенных
func ParsePeriods(raw []RawPeriod) ([]domain.ReservedPeriod, int) {
	periods := make([]domain.ReservedPeriod, 0, len(raw))
	skipped := 0

	for _, r := range raw {
		checkIn, err := types.NewDateFromString(r.CheckIn)
		if err != nil {
			skipped++
			continue
		}
		checkOut, err := types.NewDateFromString(r.CheckOut)
		if err != nil {
			skipped++
			continue
		}
		periods = append(periods, domain.ReservedPeriod{CheckIn: checkIn.Time(), CheckOut: checkOut.Time()})
	}

	return periods, skipped
}

// IsBlocked сравнивает только год, месяц и день
func (idx *Index) IsBlocked(date time.Time) bool {
	if idx == nil || date.IsZero() {
		return false
	}
	_, ok := idx.blocked[daymath.Key(date)]
	return ok
}

// AnyBlockedBetween проверяет каждый день в [from, to] включительно
func (idx *Index) AnyBlockedBetween(from, to time.Time) bool {
	if idx == nil || len(idx.blocked) == 0 {
		return false
	}
	if daymath.BeforeDay(to, from) {
		from, to = to, from
	}

	last := daymath.StartOfDay(to)
	for current := daymath.StartOfDay(from); !current.After(last); current = current.AddDate(0, 0, 1) {
		if _, ok := idx.blocked[daymath.Key(current)]; ok {
			return true
		}
	}
	return false
}

// BlockedDays отсортированные занятые дни в [from, to]
func (idx *Index) BlockedDays(from, to time.Time) []time.Time {
	days := make([]time.Time, 0)
	if idx == nil || len(idx.blocked) == 0 || daymath.BeforeDay(to, from) {
		return days
	}

	last := daymath.StartOfDay(to)
	for current := daymath.StartOfDay(from); !current.After(last); current = current.AddDate(0, 0, 1) {
		if _, ok := idx.blocked[daymath.Key(current)]; ok {
			days = append(days, current)
		}
	}
	return days
}

// All все занятые дни по порядку
func (idx *Index) All() []string {
	if idx == nil {
		return []string{}
	}
	keys := make([]string, 0, len(idx.blocked))
	for k := range idx.blocked {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len количество занятых дней
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.blocked)
}

// Skipped количество пропущенных некорректных периодов
func (idx *Index) Skipped() int {
	if idx == nil {
		return 0
	}
	return idx.skipped
}
