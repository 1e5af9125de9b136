// Package selection двухшаговый выбор дат заезда и выезда.
//
// State создаётся только через New, переходы Selector или Restore,
// поэтому состояние с датой выезда без даты заезда невозможно.
package selection

import (
	"fmt"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

// State состояние выбора дат одной попытки бронирования
type State struct {
	phase domain.SelectionPhase
	start time.Time
	end   time.Time
}

// New начальное состояние: выбор заезда, дат нет
func New() State {
	return State{phase: domain.PhaseSelectingStart}
}

func (s State) Phase() domain.SelectionPhase {
	if s.phase == "" {
		return domain.PhaseSelectingStart
	}
	return s.phase
}

// Start дата заезда, если выбрана
func (s State) Start() (time.Time, bool) {
	return s.start, !s.start.IsZero()
}

// End дата выезда, если выбрана
func (s State) End() (time.Time, bool) {
	return s.end, !s.end.IsZero()
}

func (s State) IsComplete() bool {
	return s.Phase() == domain.PhaseComplete
}

// Snapshot сериализуемая форма State
type Snapshot struct {
	Phase     domain.SelectionPhase `json:"phase"`
	StartDate *time.Time            `json:"startDate,omitempty"`
	EndDate   *time.Time            `json:"endDate,omitempty"`
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{Phase: s.Phase()}
	if start, ok := s.Start(); ok {
		snap.StartDate = &start
	}
	if end, ok := s.End(); ok {
		snap.EndDate = &end
	}
	return snap
}

// Restore восстанавливает State и отвергает комбинации, недостижимые переходами.
// Минимальный срок повторно не проверяется: он проверен при выборе выезда.
func Restore(snap Snapshot) (State, error) {
	if !snap.Phase.IsValid() {
		return State{}, fmt.Errorf("%w: unknown phase %q", ErrCorruptState, snap.Phase)
	}

	var start, end time.Time
	if snap.StartDate != nil {
		start = *snap.StartDate
	}
	if snap.EndDate != nil {
		end = *snap.EndDate
	}

	switch snap.Phase {
	case domain.PhaseSelectingStart:
		if !start.IsZero() || !end.IsZero() {
			return State{}, fmt.Errorf("%w: dates set before check-in was picked", ErrCorruptState)
		}
	case domain.PhaseSelectingEnd:
		if start.IsZero() || !end.IsZero() {
			return State{}, fmt.Errorf("%w: selecting end requires only a start date", ErrCorruptState)
		}
	case domain.PhaseComplete:
		if start.IsZero() || end.IsZero() || !end.After(start) {
			return State{}, fmt.Errorf("%w: complete selection requires start < end", ErrCorruptState)
		}
	}

	return State{phase: snap.Phase, start: start, end: end}, nil
}
