package platformapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nopLogger{})
}

func TestGetChalet_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chalets/7", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "",
			"data": {
				"id": 7, "name": "Alpine", "price": 500, "minNights": 2, "guests": 4,
				"reservedPeriods": [
					{"checkIn": "2024-06-05", "checkOut": "2024-06-07"},
					{"checkIn": "broken", "checkOut": "2024-06-09"},
					{"checkIn": "2024-07-01T00:00:00Z", "checkOut": "2024-07-03T00:00:00Z"}
				]
			}
		}`))
	})

	chalet, err := client.GetChalet(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), chalet.ID)
	assert.Equal(t, "Alpine", chalet.Name)
	assert.Equal(t, int64(500), chalet.Price)
	assert.Equal(t, 2, chalet.MinNights)
	assert.Equal(t, 4, chalet.Guests)
	require.Len(t, chalet.ReservedPeriods, 2)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), chalet.ReservedPeriods[0].CheckIn)
}

func TestGetChalet_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetChalet(context.Background(), 1)
	assert.ErrorIs(t, err, ErrChaletNotFound)
}

func TestGetChalet_EnvelopeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "chalet archived", "data": null}`))
	})

	_, err := client.GetChalet(context.Background(), 1)
	assert.ErrorIs(t, err, ErrChaletNotFound)
}

func TestGetChalet_ServerError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetChalet(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, calls)
}

func TestGetChalet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, 100*time.Millisecond, nopLogger{})
	_, err := client.GetChalet(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetChalet_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": `))
	})

	_, err := client.GetChalet(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateReservation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reservations", r.URL.Path)

		var in CreateReservationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(7), in.ChaletID)
		assert.Equal(t, "2024-06-01", in.StartDate)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "ext-42", "status": "confirmed"}}`))
	})

	res, err := client.CreateReservation(context.Background(), CreateReservationRequest{
		ChaletID:  7,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-42", res.ID)
}

func TestCreateReservation_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "dates taken"}`))
	})

	_, err := client.CreateReservation(context.Background(), CreateReservationRequest{ChaletID: 7})
	assert.ErrorIs(t, err, ErrReservationRejected)
}

func TestGetChalet_InvalidRecordRejected(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative price", `{"id": 1, "name": "A", "price": -500, "minNights": 1, "guests": 2, "reservedPeriods": []}`},
		{"no guests", `{"id": 1, "name": "A", "price": 500, "minNights": 1, "guests": 0, "reservedPeriods": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": true, "message": "", "data": ` + tt.data + `}`))
			})

			chalet, err := client.GetChalet(context.Background(), 1)
			assert.ErrorIs(t, err, ErrInvalidResponse)
			assert.Nil(t, chalet)
		})
	}
}

func TestGetChalet_FreeChaletAccepted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 1, "price": 0, "minNights": 1, "guests": 1}}`))
	})

	chalet, err := client.GetChalet(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), chalet.Price)
}
