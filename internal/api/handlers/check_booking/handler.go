package check_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries"
)

const (
	msgInvalidRoomID = "invalid_room_id"
	msgInvalidUserID = "invalid_user_id"
)

type Handler struct {
	service EntryService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service EntryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// HandleCheck GET /api/v1/rooms/{roomId}/checkbooking
// Есть ли запись, занимающая комнату сейчас
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/checkbooking - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.CheckRoom(r.Context(), roomID, h.now())
	if err != nil {
		h.respondError(w, "GET /rooms/{roomId}/checkbooking", roomID, err)
		return
	}

	h.logger.Info("GET /rooms/{roomId}/checkbooking - room_id=%d, valid=%t", roomID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleValidate GET /api/v1/rooms/{roomId}/validatebooking/{userId}
// Занимает ли комнату сейчас запись пользователя userId
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/validatebooking - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID := vars["userId"]
	result, err := h.service.ValidateRoom(r.Context(), roomID, userID, h.now())
	if err != nil {
		h.respondError(w, "GET /rooms/{roomId}/validatebooking", roomID, err)
		return
	}

	h.logger.Info("GET /rooms/{roomId}/validatebooking - room_id=%d, user_id=%s, valid=%t", roomID, userID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, roomID int64, err error) {
	if errors.Is(err, entries.ErrInvalidInput) {
		h.logger.Warn("%s - Invalid input: room_id=%d, error=%v", route, roomID, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	h.logger.Error("%s - Failed to check room: room_id=%d, error=%v", route, roomID, err)
	handlers.RespondServiceUnavailable(w)
}
