package daymath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestFloorAndCeilDisagreeOnPartialDays(t *testing.T) {
	a := date(2024, 6, 1, 0)
	b := date(2024, 6, 3, 12)

	assert.Equal(t, 2, DaysBetweenFloor(a, b))
	assert.Equal(t, 3, NightsCeil(a, b))
}

func TestWholeDaysAgree(t *testing.T) {
	a := date(2024, 6, 1, 0)
	b := date(2024, 6, 3, 0)

	assert.Equal(t, 2, DaysBetweenFloor(a, b))
	assert.Equal(t, 2, NightsCeil(a, b))
}

func TestAbsoluteDelta(t *testing.T) {
	a := date(2024, 6, 5, 0)
	b := date(2024, 6, 1, 0)

	assert.Equal(t, 4, DaysBetweenFloor(a, b))
	assert.Equal(t, 4, NightsCeil(a, b))
}

func TestShortDSTDayFloorsToZero(t *testing.T) {
	// 23 часа между полуночами при переходе на летнее время
	a := date(2024, 3, 31, 0)
	b := a.Add(23 * time.Hour)

	assert.Equal(t, 0, DaysBetweenFloor(a, b))
	assert.Equal(t, 1, NightsCeil(a, b))
}

func TestSameDayAndStartOfDay(t *testing.T) {
	a := date(2024, 6, 1, 8)
	b := date(2024, 6, 1, 23)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, date(2024, 6, 2, 0)))
	assert.Equal(t, date(2024, 6, 1, 0), StartOfDay(b))
	assert.True(t, BeforeDay(a, date(2024, 6, 2, 0)))
	assert.False(t, BeforeDay(b, a))
}
