package check_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

type EntryService interface {
	CheckRoom(ctx context.Context, roomID int64, now time.Time) (*models.CheckResponse, error)
	ValidateRoom(ctx context.Context, roomID int64, userID string, now time.Time) (*models.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
