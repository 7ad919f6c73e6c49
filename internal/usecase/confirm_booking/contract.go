package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// EntryRepository интерфейс репозитория записей
type EntryRepository interface {
	GetByConfirmationCode(ctx context.Context, code string) ([]*domain.BookingEntry, error)
	// ConfirmByCode подтверждает предварительные записи с кодом, возвращает число измененных строк
	ConfirmByCode(ctx context.Context, code string) (int64, error)
	GetWithRoomAndArea(ctx context.Context, id int64) (*domain.EntryWithRoomAndArea, error)
}

// Notifier интерфейс уведомления клиентов о подтверждении
type Notifier interface {
	BookingConfirmed(ctx context.Context, entry *domain.EntryWithRoomAndArea) error
}

// Metrics интерфейс метрик подтверждения
type Metrics interface {
	IncConfirmation(outcome string)
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
