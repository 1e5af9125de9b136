package selections

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/availability"
	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/infra/storage/session"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewService(store, 30*time.Minute, nopLogger{}).
		WithIDGenerator(func() string { return "sel-1" }).
		WithTimeProvider(fixedTime{now})
	return svc, store
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestCreateAndLoad(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	chalet := &domain.Chalet{
		ID: 7, Name: "Alpine", Price: 500, MinNights: 2, Guests: 4,
		ReservedPeriods: []domain.ReservedPeriod{{CheckIn: day("2024-06-05"), CheckOut: day("2024-06-07")}},
	}

	sess, state, expiresAt, err := svc.Create(ctx, chalet)
	require.NoError(t, err)
	assert.Equal(t, "sel-1", sess.ID)
	assert.Equal(t, domain.PhaseSelectingStart, state.Phase())
	assert.Equal(t, now.Add(30*time.Minute), expiresAt)

	_, err = store.Get(ctx, "selection:sel-1")
	require.NoError(t, err)

	loaded, loadedState, _, err := svc.Load(ctx, "sel-1")
	require.NoError(t, err)
	assert.Equal(t, chalet.ID, loaded.Chalet.ID)
	require.Len(t, loaded.Chalet.ReservedPeriods, 1)
	assert.True(t, loaded.Chalet.ReservedPeriods[0].CheckIn.Equal(day("2024-06-05")))
	assert.Equal(t, state, loadedState)
}

func TestSaveRoundTripsState(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	chalet := &domain.Chalet{ID: 7, Price: 500, MinNights: 2, Guests: 4}

	sess, state, _, err := svc.Create(ctx, chalet)
	require.NoError(t, err)

	sel := selection.NewSelector(chalet, availability.Build(nil), true)
	state, err = sel.PickStart(state, day("2024-06-01"))
	require.NoError(t, err)
	state, err = sel.PickEnd(state, day("2024-06-03"))
	require.NoError(t, err)

	_, err = svc.Save(ctx, sess, state)
	require.NoError(t, err)

	_, loaded, _, err := svc.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, loaded.IsComplete())
	end, _ := loaded.End()
	assert.True(t, end.Equal(day("2024-06-03")))
}

func TestLoad_Errors(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, _, _, err := svc.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	require.NoError(t, store.Set(ctx, "selection:broken", []byte("{"), time.Minute))
	_, _, _, err = svc.Load(ctx, "broken")
	assert.ErrorIs(t, err, ErrCorruptSession)

	require.NoError(t, store.Set(ctx, "selection:bad-phase", []byte(`{"id":"bad-phase","state":{"phase":"start"}}`), time.Minute))
	_, _, _, err = svc.Load(ctx, "bad-phase")
	assert.ErrorIs(t, err, ErrCorruptSession)
}

func TestDraftConsumedOnce(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	draft := &domain.BookingDraft{
		SelectionID: "sel-1", ChaletID: 7,
		StartDate: day("2024-06-01"), EndDate: day("2024-06-03"),
		Nights: 2, GuestCount: 2, TotalPrice: 1000,
	}

	key, _, err := svc.SaveDraft(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "booking-draft:sel-1", key)

	taken, err := svc.TakeDraft(ctx, "sel-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), taken.TotalPrice)

	_, err = svc.TakeDraft(ctx, "sel-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestSave_DropsDraftOfPreviousState(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	sess, _, _, err := svc.Create(ctx, &domain.Chalet{ID: 7, Price: 500, MinNights: 2, Guests: 4})
	require.NoError(t, err)

	_, _, err = svc.SaveDraft(ctx, &domain.BookingDraft{
		SelectionID: sess.ID, ChaletID: 7,
		StartDate: day("2024-06-01"), EndDate: day("2024-06-03"),
		Nights: 2, GuestCount: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)

	sel := selection.NewSelector(&sess.Chalet, availability.Build(nil), true)
	reopened, err := sel.PickStart(selection.New(), day("2024-07-10"))
	require.NoError(t, err)

	_, err = svc.Save(ctx, sess, reopened)
	require.NoError(t, err)

	_, err = svc.TakeDraft(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
