package get_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries"
)

const (
	msgInvalidEntryID = "invalid_entry_id"
	msgNotFound       = "entry_not_found"
)

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

// Handle GET /api/v1/entry/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /entry/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	entry, err := h.service.GetEntry(r.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, entries.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidEntryID)

		case errors.Is(err, entries.ErrEntryNotFound):
			h.logger.Warn("GET /entry/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /entry/{id} - Failed to get entry: entry_id=%d, error=%v", entryID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("GET /entry/{id} - Entry retrieved: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusOK, entry)
}
