package get_rooms_availability

import (
	"context"

	getRoomsAvailability "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_rooms_availability"
)

type RoomsAvailabilityUseCase interface {
	ExecuteArea(ctx context.Context, req *getRoomsAvailability.AreaRequest) (*getRoomsAvailability.AreaResponse, error)
	ExecuteRoom(ctx context.Context, req *getRoomsAvailability.RoomRequest) (*getRoomsAvailability.RoomAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
