package update_entry

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
	msgInvalidInput   = "invalid_parameters"
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

// HandleSetConfirmationCode PUT /api/v1/entrysetconfirmcode/{id}/{code}
func (h *Handler) HandleSetConfirmationCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entryID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /entrysetconfirmcode - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.SetConfirmationCode(r.Context(), entryID, vars["code"]); err != nil {
		h.respondError(w, "PUT /entrysetconfirmcode", entryID, err)
		return
	}

	h.logger.Info("PUT /entrysetconfirmcode - Code stored: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusOK, UpdateEntryResponse{ID: entryID, Updated: true})
}

// HandleSetReminded PUT /api/v1/entrysetreminded/{id}
func (h *Handler) HandleSetReminded(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /entrysetreminded - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.SetReminded(r.Context(), entryID); err != nil {
		h.respondError(w, "PUT /entrysetreminded", entryID, err)
		return
	}

	h.logger.Info("PUT /entrysetreminded - Entry marked: entry_id=%d", entryID)
	handlers.RespondJSON(w, http.StatusOK, UpdateEntryResponse{ID: entryID, Updated: true})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, entryID int64, err error) {
	switch {
	case errors.Is(err, entries.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: entry_id=%d, error=%v", route, entryID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, entries.ErrEntryNotFound):
		h.logger.Warn("%s - Entry not found: entry_id=%d", route, entryID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed to update entry: entry_id=%d, error=%v", route, entryID, err)
		handlers.RespondServiceUnavailable(w)
	}
}
