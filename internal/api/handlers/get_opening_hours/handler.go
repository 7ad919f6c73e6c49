package get_opening_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	getOpeningHours "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_opening_hours"
)

const (
	msgInvalidParams  = "invalid_parameters"
	msgRoomNotFound   = "room_not_found"
	msgMisconfigured  = "schedule_misconfigured"
	msgInvalidRequest = "invalid_request"
)

type Handler struct {
	useCase  OpeningHoursUseCase
	policies PolicyResolver
	location *time.Location
	logger   Logger
}

func NewHandler(useCase OpeningHoursUseCase, policies PolicyResolver, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		policies: policies,
		location: location,
		logger:   logger,
	}
}

// HandleWeek GET /api/v1/openinghours/{date}/{roomId}/{extendedRoomId}
func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parse(w, r, "GET /openinghours")
	if !ok {
		return
	}

	week, err := h.useCase.ExecuteWeek(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /openinghours", req, err)
		return
	}

	policy := h.policies.PolicyFor(req.RoomID)
	h.logger.Info("GET /openinghours - Week resolved: room_id=%d, extended_room_id=%d, week_start=%s, policy=%s",
		req.RoomID, req.ExtendedRoomID, week.WeekStart.Format(domain.DateFormat), policy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseWeek(week, policy))
}

// HandleDay GET /api/v1/openinghours/day/{date}/{roomId}/{extendedRoomId}
func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parse(w, r, "GET /openinghours/day")
	if !ok {
		return
	}

	day, err := h.useCase.ExecuteDay(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /openinghours/day", req, err)
		return
	}

	policy := h.policies.PolicyFor(req.RoomID)
	h.logger.Info("GET /openinghours/day - Day resolved: room_id=%d, extended_room_id=%d, date=%s",
		req.RoomID, req.ExtendedRoomID, day.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseDay(day, policy))
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request, route string) (*getOpeningHours.Request, bool) {
	vars := mux.Vars(r)

	req, err := ToUseCaseRequest(vars["date"], vars["roomId"], vars["extendedRoomId"], h.location)
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return nil, false
	}

	return req, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, req *getOpeningHours.Request, err error) {
	switch {
	case errors.Is(err, getOpeningHours.ErrInvalidInput):
		h.logger.Warn("%s - Invalid request: room_id=%d, error=%v", route, req.RoomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)

	case errors.Is(err, getOpeningHours.ErrNotFound):
		h.logger.Warn("%s - Room not found: room_id=%d, extended_room_id=%d", route, req.RoomID, req.ExtendedRoomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, getOpeningHours.ErrConfiguration):
		h.logger.Error("%s - Invalid schedule configuration: room_id=%d, error=%v", route, req.RoomID, err)
		handlers.RespondUnprocessable(w, msgMisconfigured)

	case errors.Is(err, getOpeningHours.ErrUpstreamUnavailable):
		h.logger.Error("%s - Upstream unavailable: room_id=%d, error=%v", route, req.RoomID, err)
		handlers.RespondServiceUnavailable(w)

	default:
		h.logger.Error("%s - Failed to resolve opening hours: room_id=%d, error=%v", route, req.RoomID, err)
		handlers.RespondInternalError(w)
	}
}
