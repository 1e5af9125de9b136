package confirm_selection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confirmSelection "github.com/m04kA/ChaletBookingService/internal/usecase/confirm_selection"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *confirmSelection.Request
	resp *confirmSelection.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *confirmSelection.Request) (*confirmSelection.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc ConfirmSelectionUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/selections/{selectionId}/confirm", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/selections/sel-9/confirm", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &confirmSelection.Response{
		DraftKey:    "booking-draft:sel-9",
		SelectionID: "sel-9",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Nights:      3,
		GuestCount:  2,
		TotalPrice:  1500,
	}}

	rec := serve(uc, `{"guestCount": 2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "sel-9", uc.got.SelectionID)
	assert.Equal(t, 2, uc.got.GuestCount)
	assert.Contains(t, rec.Body.String(), `"draftKey":"booking-draft:sel-9"`)
	assert.Contains(t, rec.Body.String(), `"endDate":"2024-06-04"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"zero guests", `{"guestCount": 0}`, nil, http.StatusBadRequest},
		{"no body", ``, nil, http.StatusBadRequest},
		{"not found", `{"guestCount": 1}`, confirmSelection.ErrSelectionNotFound, http.StatusNotFound},
		{"incomplete", `{"guestCount": 1}`, confirmSelection.ErrSelectionIncomplete, http.StatusConflict},
		{"too many guests", `{"guestCount": 12}`, confirmSelection.ErrInvalidGuestCount, http.StatusUnprocessableEntity},
		{"internal", `{"guestCount": 1}`, confirmSelection.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
