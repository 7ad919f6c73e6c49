package get_reminder_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries"
)

const msgInvalidParams = "invalid_parameters"

type Handler struct {
	service EntryService
	logger  Logger
}

func NewHandler(service EntryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reminderbookings/{from}/{to}/{status}/{type}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req, err := ToServiceRequest(vars["from"], vars["to"], vars["status"], vars["type"])
	if err != nil {
		h.logger.Warn("GET /reminderbookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListReminderBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, entries.ErrInvalidInput) {
			h.logger.Warn("GET /reminderbookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /reminderbookings - Failed to list entries: %v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /reminderbookings - Entries retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
