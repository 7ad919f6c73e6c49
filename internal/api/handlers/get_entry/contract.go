package get_entry

import (
	"context"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

type EntryService interface {
	GetEntry(ctx context.Context, id int64) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
