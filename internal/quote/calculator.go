// Package quote расчёт количества ночей и итоговой стоимости
package quote

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
	"github.com/m04kA/ChaletBookingService/pkg/daymath"
)

// Compute возвращает {0, 0}, если одна из дат не задана (нулевая).
// Ночи считаются с округлением вверх, см. daymath.NightsCeil.
func Compute(start, end time.Time, nightlyPrice int64) domain.Quote {
	if start.IsZero() || end.IsZero() {
		return domain.Quote{}
	}

	nights := daymath.NightsCeil(start, end)
	return domain.Quote{
		Nights:     nights,
		TotalPrice: int64(nights) * nightlyPrice,
	}
}

// ForState расчёт для текущего выбора; пустой, пока не выбраны обе даты
func ForState(state selection.State, nightlyPrice int64) domain.Quote {
	start, hasStart := state.Start()
	end, hasEnd := state.End()
	if !hasStart || !hasEnd {
		return domain.Quote{}
	}
	return Compute(start, end, nightlyPrice)
}
