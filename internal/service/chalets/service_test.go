package chalets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/integrations/platformapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakePlatform struct {
	chalet *domain.Chalet
	err    error
}

func (f *fakePlatform) GetChalet(context.Context, int64) (*domain.Chalet, error) {
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.chalet
	copied.ReservedPeriods = append([]domain.ReservedPeriod(nil), f.chalet.ReservedPeriods...)
	return &copied, nil
}

type fakeReservations struct {
	list []*domain.Reservation
	err  error
	from time.Time
}

func (f *fakeReservations) ListActiveFrom(_ context.Context, _ int64, from time.Time) ([]*domain.Reservation, error) {
	f.from = from
	return f.list, f.err
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGetSnapshot_MergesLocalReservations(t *testing.T) {
	platform := &fakePlatform{chalet: &domain.Chalet{
		ID: 7, Price: 500, MinNights: 2, Guests: 4,
		ReservedPeriods: []domain.ReservedPeriod{{CheckIn: day("2024-06-05"), CheckOut: day("2024-06-07")}},
	}}
	local := &fakeReservations{list: []*domain.Reservation{
		{StartDate: day("2024-06-10"), EndDate: day("2024-06-12"), Status: domain.ReservationPending},
	}}

	svc := NewService(platform, local, nopLogger{}).
		WithTimeProvider(fixedTime{time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)})

	chalet, err := svc.GetSnapshot(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, chalet.ReservedPeriods, 2)
	assert.Equal(t, day("2024-06-10"), chalet.ReservedPeriods[1].CheckIn)
	assert.Equal(t, day("2024-06-11"), chalet.ReservedPeriods[1].CheckOut)
	assert.Equal(t, day("2024-06-01"), local.from)
}

func TestGetSnapshot_LocalErrorDegrades(t *testing.T) {
	platform := &fakePlatform{chalet: &domain.Chalet{ID: 7}}
	svc := NewService(platform, &fakeReservations{err: errors.New("db down")}, nopLogger{})

	chalet, err := svc.GetSnapshot(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, chalet.ReservedPeriods)
}

func TestGetSnapshot_PlatformErrors(t *testing.T) {
	svc := NewService(&fakePlatform{err: platformapi.ErrChaletNotFound}, nil, nopLogger{})
	_, err := svc.GetSnapshot(context.Background(), 1)
	assert.ErrorIs(t, err, ErrChaletNotFound)

	svc = NewService(&fakePlatform{err: fmt.Errorf("%w: timeout", platformapi.ErrUnavailable)}, nil, nopLogger{})
	_, err = svc.GetSnapshot(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPlatformUnavailable)
}
