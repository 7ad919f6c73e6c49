package get_opening_hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс источника расписаний
type ScheduleRepository interface {
	// GetRoom получает комнату вместе с недельным расписанием
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetArea(ctx context.Context, id int64) (*domain.Area, error)
	// GetClosedDays возвращает даты диапазона [from, to), с которыми пересекаются записи комнаты
	GetClosedDays(ctx context.Context, roomID int64, from, to time.Time) (domain.ClosedDays, error)
}

// EntryRepository интерфейс проверки занятости слота
type EntryRepository interface {
	IsSlotOccupied(ctx context.Context, roomID int64, instant time.Time) (bool, error)
}

// Metrics интерфейс метрик вычисления часов работы
type Metrics interface {
	IncSlotProbe(occupied bool)
	ObserveDayHours(scope string, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
