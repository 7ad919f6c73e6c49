package confirm_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/confirm_booking"
)

const (
	msgCodeMissing      = "confirm_code_missing"
	msgNotFound         = "confirm_not_found"
	msgNotInPeriod      = "not_in_confirm_period"
	msgConcurrentUpdate = "confirm_conflict"
)

type Handler struct {
	useCase  ConfirmBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase ConfirmBookingUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/entry/confirm/{confirmationCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["confirmationCode"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Code: code})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("GET /entry/confirm - Missing confirmation code")
			handlers.RespondBadRequest(w, msgCodeMissing)

		case errors.Is(err, confirmBooking.ErrNotFound):
			h.logger.Warn("GET /entry/confirm - Confirmation code not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrOutsideConfirmationWindow):
			h.logger.Warn("GET /entry/confirm - Outside confirmation window: %v", err)
			handlers.RespondUnprocessable(w, msgNotInPeriod)

		case errors.Is(err, confirmBooking.ErrConcurrentModification):
			h.logger.Warn("GET /entry/confirm - Concurrent modification: %v", err)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, confirmBooking.ErrUpstreamUnavailable):
			h.logger.Error("GET /entry/confirm - Upstream unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /entry/confirm - Failed to confirm booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /entry/confirm - Booking confirmed: entry_id=%d, room_id=%d", result.EntryID, result.RoomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
