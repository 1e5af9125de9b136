package pick_date

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/selection"
	"github.com/m04kA/ChaletBookingService/internal/service/selections/models"
	pickDate "github.com/m04kA/ChaletBookingService/internal/usecase/pick_date"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *pickDate.Request
	resp *pickDate.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *pickDate.Request) (*pickDate.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc PickDateUseCase, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/selections/{selectionId}/{target:start|end}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/selections/sel-1/"+target, strings.NewReader(body)))
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestHandle_Accepted(t *testing.T) {
	start := "2024-06-01"
	uc := &stubUseCase{resp: &models.SelectionView{SelectionID: "sel-1", Phase: string(domain.PhaseSelectingEnd), StartDate: &start}}

	rec := serve(uc, "start", `{"date": "2024-06-01"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "sel-1", uc.got.SelectionID)
	assert.Equal(t, pickDate.TargetStart, uc.got.Target)
	assert.Equal(t, "2024-06-01", uc.got.Date.Format(domain.DateFormat))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
}

func TestHandle_RejectedReturnsUnchangedState(t *testing.T) {
	start := "2024-07-01"
	view := &models.SelectionView{SelectionID: "sel-1", Phase: string(domain.PhaseSelectingEnd), StartDate: &start, MinNights: 3}
	uc := &stubUseCase{err: &pickDate.RejectedError{
		Cause:     &selection.MinNightsError{Required: 3, Selected: 1},
		Reason:    domain.RejectMinNights,
		Selection: view,
	}}

	rec := serve(uc, "end", `{"date": "2024-07-02"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "3")

	var data RejectionResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, domain.RejectMinNights, data.Reason)
	require.NotNil(t, data.Selection)
	assert.Equal(t, string(domain.PhaseSelectingEnd), data.Selection.Phase)
	assert.Nil(t, data.Selection.EndDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "invalid json", body: `{"date": 1}`, status: http.StatusBadRequest},
		{name: "missing date", body: `{}`, status: http.StatusBadRequest},
		{name: "bad date format", body: `{"date": "01.06.2024"}`, status: http.StatusBadRequest},
		{name: "not found", body: `{"date": "2024-06-01"}`, err: pickDate.ErrSelectionNotFound, status: http.StatusNotFound},
		{name: "internal", body: `{"date": "2024-06-01"}`, err: pickDate.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, "start", tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_UnknownTargetNotRouted(t *testing.T) {
	rec := serve(&stubUseCase{}, "middle", `{"date": "2024-06-01"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
