package get_opening_hours

import (
	"context"

	getOpeningHours "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_opening_hours"
)

type OpeningHoursUseCase interface {
	ExecuteDay(ctx context.Context, req *getOpeningHours.Request) (*getOpeningHours.DayHours, error)
	ExecuteWeek(ctx context.Context, req *getOpeningHours.Request) (*getOpeningHours.WeekResponse, error)
}

// PolicyResolver выбирает политику отображения по ID обычной комнаты
type PolicyResolver interface {
	PolicyFor(roomID int64) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
