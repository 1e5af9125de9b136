package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(in, out string) domain.ReservedPeriod {
	return domain.ReservedPeriod{CheckIn: day(in), CheckOut: day(out)}
}

func TestBuild_EmptyBlocksNothing(t *testing.T) {
	idx := Build(nil)

	for d := day("2024-01-01"); d.Before(day("2025-01-01")); d = d.AddDate(0, 0, 3) {
		assert.False(t, idx.IsBlocked(d), d)
	}
	assert.Equal(t, 0, idx.Len())
}

func TestBuild_InclusiveSpan(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{period("2024-06-05", "2024-06-07")})

	assert.False(t, idx.IsBlocked(day("2024-06-04")))
	assert.True(t, idx.IsBlocked(day("2024-06-05")))
	assert.True(t, idx.IsBlocked(day("2024-06-06")))
	assert.True(t, idx.IsBlocked(day("2024-06-07")))
	assert.False(t, idx.IsBlocked(day("2024-06-08")))
	assert.Equal(t, 3, idx.Len())
}

func TestIsBlocked_IgnoresTimeOfDay(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{{
		CheckIn:  time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 6, 9, 0, 0, 0, time.UTC),
	}})

	assert.True(t, idx.IsBlocked(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, idx.IsBlocked(time.Date(2024, 6, 6, 23, 59, 0, 0, time.UTC)))
	assert.False(t, idx.IsBlocked(time.Date(2024, 6, 7, 0, 0, 1, 0, time.UTC)))
}

func TestBuild_OverlapsAreUnion(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{
		period("2024-06-01", "2024-06-04"),
		period("2024-06-03", "2024-06-06"),
	})

	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, []string{
		"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06",
	}, idx.All())
}

func TestBuild_ReversedPeriodContributesNothing(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{period("2024-06-10", "2024-06-01")})

	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.IsBlocked(day("2024-06-05")))
}

func TestIsBlocked_MatchesPeriodMembership(t *testing.T) {
	periods := []domain.ReservedPeriod{
		period("2024-02-27", "2024-03-02"),
		period("2024-03-10", "2024-03-10"),
		period("2024-12-30", "2025-01-02"),
	}
	idx := Build(periods)

	inSomePeriod := func(d time.Time) bool {
		for _, p := range periods {
			if !d.Before(p.CheckIn) && !d.After(p.CheckOut) {
				return true
			}
		}
		return false
	}

	for d := day("2024-01-01"); d.Before(day("2025-02-01")); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, inSomePeriod(d), idx.IsBlocked(d), d.Format("2006-01-02"))
	}
}

func TestBuildFromRaw_SkipsMalformed(t *testing.T) {
	idx := BuildFromRaw([]RawPeriod{
		{CheckIn: "2024-06-05", CheckOut: "2024-06-06"},
		{CheckIn: "not-a-date", CheckOut: "2024-06-20"},
		{CheckIn: "2024-07-01T00:00:00Z", CheckOut: "2024-07-01T00:00:00Z"},
		{CheckIn: "2024-08-01", CheckOut: ""},
	})

	assert.True(t, idx.IsBlocked(day("2024-06-05")))
	assert.True(t, idx.IsBlocked(day("2024-07-01")))
	assert.False(t, idx.IsBlocked(day("2024-06-19")))
	assert.False(t, idx.IsBlocked(day("2024-08-01")))
	assert.Equal(t, 2, idx.Skipped())
}

func TestAnyBlockedBetween(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{period("2024-06-05", "2024-06-07")})

	assert.False(t, idx.AnyBlockedBetween(day("2024-06-01"), day("2024-06-04")))
	assert.True(t, idx.AnyBlockedBetween(day("2024-06-01"), day("2024-06-05")))
	assert.True(t, idx.AnyBlockedBetween(day("2024-06-01"), day("2024-06-10")))
	assert.True(t, idx.AnyBlockedBetween(day("2024-06-10"), day("2024-06-07")))
	assert.False(t, idx.AnyBlockedBetween(day("2024-06-08"), day("2024-06-12")))
}

func TestBlockedDays(t *testing.T) {
	idx := Build([]domain.ReservedPeriod{period("2024-06-05", "2024-06-07")})

	days := idx.BlockedDays(day("2024-06-06"), day("2024-06-30"))
	require.Len(t, days, 2)
	assert.Equal(t, day("2024-06-06"), days[0])
	assert.Equal(t, day("2024-06-07"), days[1])

	assert.Empty(t, idx.BlockedDays(day("2024-06-30"), day("2024-06-01")))
}
