package selection

import (
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/pkg/daymath"
)

// BlockedChecker availability.Index
type BlockedChecker interface {
	IsBlocked(date time.Time) bool
	AnyBlockedBetween(from, to time.Time) bool
}

// Selector применяет выбор дат к State для одного шале.
// При отказе возвращается исходное состояние и ошибка.
type Selector struct {
	MinNights int
	Index     BlockedChecker

	// CheckRangeOverlap отклоняет выезд, если в [start, end] есть занятый день.
	// При false проверяются только день заезда и минимальный срок.
	CheckRangeOverlap bool
}

// NewSelector селектор для снимка шале
func NewSelector(chalet *domain.Chalet, index BlockedChecker, checkRangeOverlap bool) *Selector {
	return &Selector{
		MinNights:         chalet.EffectiveMinNights(),
		Index:             index,
		CheckRangeOverlap: checkRangeOverlap,
	}
}

// PickStart допустим из любой фазы: сбрасывает выезд и переводит в SelectingEnd,
// поэтому повторный выбор того же заезда идемпотентен.
func (s *Selector) PickStart(state State, date time.Time) (State, error) {
	if s.isBlocked(date) {
		return state, ErrDateBlocked
	}

	return State{
		phase: domain.PhaseSelectingEnd,
		start: daymath.StartOfDay(date),
	}, nil
}

// PickEnd допустим в SelectingEnd и Complete (смена даты выезда)
func (s *Selector) PickEnd(state State, date time.Time) (State, error) {
	start, ok := state.Start()
	if !ok || state.Phase() == domain.PhaseSelectingStart {
		return state, ErrStartNotSelected
	}

	end := daymath.StartOfDay(date)
	if !end.After(start) {
		return state, ErrEndBeforeStart
	}

	minNights := s.minNights()
	if days := daymath.DaysBetweenFloor(start, end); days < minNights {
		return state, &MinNightsError{Required: minNights, Selected: days}
	}

	if s.CheckRangeOverlap && s.Index != nil && s.Index.AnyBlockedBetween(start, end) {
		return state, ErrRangeBlocked
	}

	return State{
		phase: domain.PhaseComplete,
		start: start,
		end:   end,
	}, nil
}

// Reset возврат в SelectingStart без дат
func (s *Selector) Reset() State {
	return New()
}

func (s *Selector) minNights() int {
	if s.MinNights < domain.DefaultMinNights {
		return domain.DefaultMinNights
	}
	return s.MinNights
}

func (s *Selector) isBlocked(date time.Time) bool {
	return s.Index != nil && s.Index.IsBlocked(date)
}
