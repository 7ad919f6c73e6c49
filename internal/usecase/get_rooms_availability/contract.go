package get_rooms_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория комнат и областей
type ScheduleRepository interface {
	GetArea(ctx context.Context, id int64) (*domain.Area, error)
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetRoomsByArea(ctx context.Context, areaID int64) ([]*domain.Room, error)
}

// EntryRepository интерфейс репозитория записей
type EntryRepository interface {
	// GetOverlapping получает записи комнаты, занимающие момент instant, в порядке начала
	GetOverlapping(ctx context.Context, roomID int64, instant time.Time) ([]*domain.BookingEntry, error)
}

// Metrics интерфейс метрик классификации
type Metrics interface {
	IncHourStatus(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
