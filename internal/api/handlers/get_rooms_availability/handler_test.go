package get_rooms_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	getRoomsAvailability "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_rooms_availability"
)

type fakeUseCase struct {
	area    *getRoomsAvailability.AreaResponse
	room    *getRoomsAvailability.RoomAvailability
	err     error
	areaReq *getRoomsAvailability.AreaRequest
	roomReq *getRoomsAvailability.RoomRequest
}

func (f *fakeUseCase) ExecuteArea(_ context.Context, req *getRoomsAvailability.AreaRequest) (*getRoomsAvailability.AreaResponse, error) {
	f.areaReq = req
	return f.area, f.err
}

func (f *fakeUseCase) ExecuteRoom(_ context.Context, req *getRoomsAvailability.RoomRequest) (*getRoomsAvailability.RoomAvailability, error) {
	f.roomReq = req
	return f.room, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(vars map[string]string) *http.Request {
	return mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/roomsavailability", nil), vars)
}

func TestHandleArea(t *testing.T) {
	uc := &fakeUseCase{area: &getRoomsAvailability.AreaResponse{
		AreaID:    3,
		Timestamp: time.Unix(1746522000, 0),
		Rooms: []getRoomsAvailability.RoomAvailability{
			{RoomID: 1, RoomNumber: "101", RoomName: "Grupprum 1", Availability: true, Status: domain.HourFree},
			{RoomID: 2, RoomNumber: "102", RoomName: "Grupprum 2", Availability: false, Status: domain.HourToBeConfirmed},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleArea(rec, request(map[string]string{"areaId": "3", "timestamp": "1746522000"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1746522000", uc.areaReq.Timestamp)

	var body AreaAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1746522000), body.Timestamp)
	require.Len(t, body.Rooms, 2)
	assert.Equal(t, "101", body.Rooms[0].RoomNumber)
	assert.Equal(t, "tobeconfirmed", body.Rooms[1].Status)
	assert.False(t, body.Rooms[1].Availability)
}

func TestHandleRoom(t *testing.T) {
	uc := &fakeUseCase{room: &getRoomsAvailability.RoomAvailability{RoomID: 5, Availability: true, Status: domain.HourUnavailable}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleRoom(rec, request(map[string]string{"areaId": "3", "roomId": "5", "timestamp": "1"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.roomReq.RoomID)

	var body RoomAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		err      error
		wantCode int
	}{
		{name: "bad area", vars: map[string]string{"areaId": "x", "roomId": "1", "timestamp": "1"}, wantCode: http.StatusBadRequest},
		{name: "bad room", vars: map[string]string{"areaId": "1", "roomId": "x", "timestamp": "1"}, wantCode: http.StatusBadRequest},
		{name: "bad timestamp", err: getRoomsAvailability.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not found", err: getRoomsAvailability.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "upstream", err: getRoomsAvailability.ErrUpstreamUnavailable, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := tt.vars
			if vars == nil {
				vars = map[string]string{"areaId": "1", "roomId": "2", "timestamp": "abc"}
			}
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.HandleRoom(rec, request(vars))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
