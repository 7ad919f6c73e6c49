package get_rooms_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	getRoomsAvailability "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_rooms_availability"
)

const (
	msgInvalidAreaID    = "invalid_area_id"
	msgInvalidRoomID    = "invalid_room_id"
	msgInvalidTimestamp = "invalid_timestamp"
	msgNotFound         = "area_or_room_not_found"
)

type Handler struct {
	useCase RoomsAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase RoomsAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleArea GET /api/v1/roomsavailability/{areaId}/{timestamp}
func (h *Handler) HandleArea(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	areaID, err := strconv.ParseInt(vars["areaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /roomsavailability - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	result, err := h.useCase.ExecuteArea(r.Context(), &getRoomsAvailability.AreaRequest{
		AreaID:    areaID,
		Timestamp: vars["timestamp"],
	})
	if err != nil {
		h.respondError(w, "GET /roomsavailability", areaID, err)
		return
	}

	h.logger.Info("GET /roomsavailability - Rooms classified: area_id=%d, rooms_count=%d", areaID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseArea(result))
}

// HandleRoom GET /api/v1/roomsavailability/{areaId}/{roomId}/{timestamp}
func (h *Handler) HandleRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	areaID, err := strconv.ParseInt(vars["areaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /roomsavailability/{areaId}/{roomId} - Invalid area ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /roomsavailability/{areaId}/{roomId} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.ExecuteRoom(r.Context(), &getRoomsAvailability.RoomRequest{
		AreaID:    areaID,
		RoomID:    roomID,
		Timestamp: vars["timestamp"],
	})
	if err != nil {
		h.respondError(w, "GET /roomsavailability/{areaId}/{roomId}", areaID, err)
		return
	}

	h.logger.Info("GET /roomsavailability/{areaId}/{roomId} - Room classified: area_id=%d, room_id=%d, status=%s",
		areaID, roomID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseRoom(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, areaID int64, err error) {
	switch {
	case errors.Is(err, getRoomsAvailability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: area_id=%d, error=%v", route, areaID, err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)

	case errors.Is(err, getRoomsAvailability.ErrNotFound):
		h.logger.Warn("%s - Not found: area_id=%d", route, areaID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, getRoomsAvailability.ErrUpstreamUnavailable):
		h.logger.Error("%s - Upstream unavailable: area_id=%d, error=%v", route, areaID, err)
		handlers.RespondServiceUnavailable(w)

	default:
		h.logger.Error("%s - Failed to classify rooms: area_id=%d, error=%v", route, areaID, err)
		handlers.RespondInternalError(w)
	}
}
