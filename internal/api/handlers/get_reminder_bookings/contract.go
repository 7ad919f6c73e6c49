package get_reminder_bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

type EntryService interface {
	ListReminderBookings(ctx context.Context, req *models.ReminderBookingsRequest) ([]models.ReminderBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
