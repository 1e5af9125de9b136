package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/service/chalets"
	"github.com/m04kA/ChaletBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeChalets struct {
	chalet *domain.Chalet
	err    error
}

func (f *fakeChalets) GetSnapshot(context.Context, int64) (*domain.Chalet, error) {
	return f.chalet, f.err
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newUseCase(f *fakeChalets) *UseCase {
	return NewUseCase(f, 30, 60, nopLogger{}).
		WithTimeProvider(fixedTime{time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)})
}

func TestExecute_DefaultWindow(t *testing.T) {
	f := &fakeChalets{chalet: &domain.Chalet{
		ID: 7, Name: "Alpine", Price: 500, MinNights: 0, Guests: 4,
		ReservedPeriods: []domain.ReservedPeriod{
			{CheckIn: day("2024-06-05"), CheckOut: day("2024-06-07")},
			{CheckIn: day("2024-08-01"), CheckOut: day("2024-08-03")},
		},
	}}

	resp, err := newUseCase(f).Execute(context.Background(), &Request{ChaletID: 7})
	require.NoError(t, err)

	assert.Equal(t, day("2024-06-01"), resp.From)
	assert.Equal(t, day("2024-07-01"), resp.To)
	assert.Equal(t, 1, resp.MinNights)
	assert.Equal(t, []time.Time{day("2024-06-05"), day("2024-06-06"), day("2024-06-07")}, resp.BlockedDates)
}

func TestExecute_ExplicitRange(t *testing.T) {
	f := &fakeChalets{chalet: &domain.Chalet{
		ID:              7,
		ReservedPeriods: []domain.ReservedPeriod{{CheckIn: day("2024-06-05"), CheckOut: day("2024-06-07")}},
	}}

	resp, err := newUseCase(f).Execute(context.Background(), &Request{
		ChaletID: 7,
		From:     ptr.Ptr(day("2024-06-06")),
		To:       ptr.Ptr(day("2024-06-06")),
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("2024-06-06")}, resp.BlockedDates)
}

func TestExecute_RangeValidation(t *testing.T) {
	uc := newUseCase(&fakeChalets{chalet: &domain.Chalet{ID: 7}})

	_, err := uc.Execute(context.Background(), &Request{ChaletID: 7, From: ptr.Ptr(day("2024-06-10")), To: ptr.Ptr(day("2024-06-01"))})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{ChaletID: 7, From: ptr.Ptr(day("2024-06-01")), To: ptr.Ptr(day("2024-09-01"))})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}

func TestExecute_ChaletErrors(t *testing.T) {
	_, err := newUseCase(&fakeChalets{err: chalets.ErrChaletNotFound}).Execute(context.Background(), &Request{ChaletID: 1})
	assert.ErrorIs(t, err, ErrChaletNotFound)

	_, err = newUseCase(&fakeChalets{err: chalets.ErrPlatformUnavailable}).Execute(context.Background(), &Request{ChaletID: 1})
	assert.ErrorIs(t, err, ErrPlatformUnavailable)
}
