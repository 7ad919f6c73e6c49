package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/confirm_booking"
)

type fakeUseCase struct {
	resp *confirmBooking.Response
	err  error
	code string
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.code = req.Code
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(code string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entry/confirm/"+code, nil)
	return mux.SetURLVars(req, map[string]string{"confirmationCode": code})
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2025, 5, 6, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &confirmBooking.Response{
		EntryID:     1,
		RoomID:      7,
		RoomName:    "Grupprum 1",
		AreaID:      3,
		DefaultView: domain.ViewWeek,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}}
	h := NewHandler(uc, time.UTC, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, request("abc"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", uc.code)

	var body ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Confirmation)
	assert.Equal(t, "Grupprum 1", body.Name)
	assert.Equal(t, "week", body.View)
	assert.Equal(t, "2025-05-06 10:00", body.StartTime)
	assert.Equal(t, "2025-05-06 11:00", body.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{err: confirmBooking.ErrInvalidInput, wantCode: http.StatusBadRequest, wantMsg: msgCodeMissing},
		{err: confirmBooking.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: msgNotFound},
		{err: confirmBooking.ErrOutsideConfirmationWindow, wantCode: http.StatusUnprocessableEntity, wantMsg: msgNotInPeriod},
		{err: confirmBooking.ErrConcurrentModification, wantCode: http.StatusConflict, wantMsg: msgConcurrentUpdate},
		{err: confirmBooking.ErrUpstreamUnavailable, wantCode: http.StatusServiceUnavailable, wantMsg: "service_unavailable"},
		{err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, time.UTC, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, request("abc"))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, rec.Body.String())
		})
	}
}
