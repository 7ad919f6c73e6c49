package get_opening_hours

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/config"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	getOpeningHours "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_opening_hours"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

type fakeUseCase struct {
	day  *getOpeningHours.DayHours
	week *getOpeningHours.WeekResponse
	err  error
	got  *getOpeningHours.Request
}

func (f *fakeUseCase) ExecuteDay(_ context.Context, req *getOpeningHours.Request) (*getOpeningHours.DayHours, error) {
	f.got = req
	return f.day, f.err
}

func (f *fakeUseCase) ExecuteWeek(_ context.Context, req *getOpeningHours.Request) (*getOpeningHours.WeekResponse, error) {
	f.got = req
	return f.week, f.err
}

type staticPolicy string

func (p staticPolicy) PolicyFor(int64) string {
	return string(p)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sec(h, m int) *types.SecondOfDay {
	s := types.NewSecondOfDay(h, m)
	return &s
}

func hours(first, last *types.SecondOfDay, manned, ext bool) domain.ResolvedDayHours {
	return domain.ResolvedDayHours{
		FirstOpen:      first,
		LastOpen:       last,
		IsManned:       manned,
		IsExtendedOpen: ext,
		IsClosed:       !manned && !ext,
	}
}

var date = time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)

func mixedDay() *getOpeningHours.DayHours {
	return &getOpeningHours.DayHours{
		Date:          date,
		Regular:       hours(sec(10, 0), sec(16, 0), true, false),
		Extended:      hours(sec(7, 0), sec(22, 0), false, true),
		Merged:        hours(sec(7, 0), sec(22, 0), true, true),
		NeedsFootnote: true,
	}
}

func request(target string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return mux.SetURLVars(req, vars)
}

func TestDisplay(t *testing.T) {
	unmanned := &getOpeningHours.DayHours{
		Extended: hours(sec(8, 30), sec(20, 0), false, true),
		Merged:   hours(sec(8, 30), sec(20, 0), false, true),
	}
	closed := &getOpeningHours.DayHours{Merged: hours(nil, nil, false, false)}

	tests := []struct {
		name   string
		day    *getOpeningHours.DayHours
		policy string
		want   string
	}{
		{name: "footnote marks differing schedules", day: mixedDay(), policy: config.PolicyFootnote, want: "7*-22"},
		{name: "manned split", day: mixedDay(), policy: config.PolicyMannedSplit, want: "7-22 (manned 10-16)"},
		{name: "unmanned", day: unmanned, policy: config.PolicyMannedSplit, want: "8.30-20 (unmanned)"},
		{name: "plain", day: mixedDay(), policy: config.PolicyPlain, want: "7-22"},
		{name: "closed", day: closed, policy: config.PolicyFootnote, want: "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.day, tt.policy))
		})
	}
}

func TestHandleDay(t *testing.T) {
	uc := &fakeUseCase{day: mixedDay()}
	h := NewHandler(uc, staticPolicy(config.PolicyFootnote), time.UTC, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDay(rec, request("/api/v1/openinghours/day/2025-05-06/1/2",
		map[string]string{"date": "2025-05-06", "roomId": "1", "extendedRoomId": "2"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), uc.got.RoomID)
	assert.Equal(t, int64(2), uc.got.ExtendedRoomID)
	assert.True(t, uc.got.Date.Equal(date))

	var body DayHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-05-06", body.Date)
	assert.Equal(t, "Tuesday", body.Weekday)
	require.NotNil(t, body.FirstOpen)
	assert.Equal(t, "07:00", *body.FirstOpen)
	assert.Equal(t, "10:00", *body.Regular.FirstOpen)
	assert.True(t, body.NeedsFootnote)
	assert.Equal(t, "7*-22", body.Display)
}

func TestHandleWeek(t *testing.T) {
	days := make([]getOpeningHours.DayHours, domain.DaysInWeek)
	for i := range days {
		days[i] = *mixedDay()
		days[i].Date = date.AddDate(0, 0, i-1)
	}
	uc := &fakeUseCase{week: &getOpeningHours.WeekResponse{
		RoomID:    1,
		WeekStart: date.AddDate(0, 0, -1),
		WeekEnd:   date.AddDate(0, 0, 5),
		NextDate:  date.AddDate(0, 0, 7),
		Days:      days,
		Today:     days[1],
	}}
	h := NewHandler(uc, staticPolicy(config.PolicyPlain), time.UTC, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleWeek(rec, request("/api/v1/openinghours/2025-05-06/1/0",
		map[string]string{"date": "2025-05-06", "roomId": "1", "extendedRoomId": "0"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var body WeekResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-05-05", body.WeekStart)
	assert.Equal(t, "2025-05-11", body.WeekEnd)
	assert.Nil(t, body.PrevDate)
	assert.Equal(t, "2025-05-13", body.NextDate)
	assert.Equal(t, config.PolicyPlain, body.Policy)
	assert.Len(t, body.Days, domain.DaysInWeek)
	assert.Equal(t, "2025-05-06", body.Today.Date)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		err      error
		wantCode int
	}{
		{name: "bad date", vars: map[string]string{"date": "06-05-2025", "roomId": "1", "extendedRoomId": "0"}, wantCode: http.StatusBadRequest},
		{name: "bad room", vars: map[string]string{"date": "2025-05-06", "roomId": "x", "extendedRoomId": "0"}, wantCode: http.StatusBadRequest},
		{name: "invalid input", err: getOpeningHours.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not found", err: getOpeningHours.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "configuration", err: getOpeningHours.ErrConfiguration, wantCode: http.StatusUnprocessableEntity},
		{name: "upstream", err: getOpeningHours.ErrUpstreamUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "unknown", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := tt.vars
			if vars == nil {
				vars = map[string]string{"date": "2025-05-06", "roomId": "1", "extendedRoomId": "0"}
			}
			uc := &fakeUseCase{err: tt.err}
			h := NewHandler(uc, staticPolicy(config.PolicyFootnote), time.UTC, nopLogger{})

			rec := httptest.NewRecorder()
			h.HandleDay(rec, request("/api/v1/openinghours/day", vars))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
