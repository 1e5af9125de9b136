package get_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/ChaletBookingService/internal/api/middleware"
	"github.com/m04kA/ChaletBookingService/internal/service/reservations"
	"github.com/m04kA/ChaletBookingService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.ReservationResponse
	err  error
}

func (s *stubService) GetByID(context.Context, int64, int64) (*models.ReservationResponse, error) {
	return s.resp, s.err
}

func serve(svc ReservationService, path, userID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	protected := router.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		svc    *stubService
		status int
	}{
		{"ok", "/reservations/3", &stubService{resp: &models.ReservationResponse{ID: 3, Status: "confirmed"}}, http.StatusOK},
		{"bad id", "/reservations/x", &stubService{}, http.StatusBadRequest},
		{"not found", "/reservations/3", &stubService{err: reservations.ErrReservationNotFound}, http.StatusNotFound},
		{"foreign", "/reservations/3", &stubService{err: reservations.ErrAccessDenied}, http.StatusForbidden},
		{"internal", "/reservations/3", &stubService{err: reservations.ErrInternal}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc, tt.path, "5")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
