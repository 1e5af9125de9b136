package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/api/middleware"
	"github.com/m04kA/ChaletBookingService/internal/usecase/checkout"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *checkout.Request
	resp *checkout.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *checkout.Request) (*checkout.Response, error) {
	s.got = req
	return s.resp, s.err
}

func do(uc CheckoutUseCase, userID string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &checkout.Response{
		ReservationID: 10,
		ChaletID:      5,
		StartDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Nights:        2,
		GuestCount:    2,
		TotalPrice:    1000,
		Status:        "confirmed",
	}}

	rec := do(uc, "42", `{"selectionId": "sel-1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)
	assert.Equal(t, "sel-1", uc.got.SelectionID)
	assert.Contains(t, rec.Body.String(), `"startDate":"2024-06-01"`)
}

func TestHandle_RequiresUser(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(uc, "", `{"selectionId": "sel-1"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)

	rec = do(uc, "abc", `{"selectionId": "sel-1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{checkout.ErrDraftNotFound, http.StatusNotFound},
		{checkout.ErrDatesTaken, http.StatusConflict},
		{checkout.ErrReservationRejected, http.StatusConflict},
		{checkout.ErrPlatformUnavailable, http.StatusServiceUnavailable},
		{checkout.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: boom", checkout.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := do(&stubUseCase{err: tt.err}, "1", `{"selectionId": "sel-1"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_MissingSelectionID(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(uc, "1", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
