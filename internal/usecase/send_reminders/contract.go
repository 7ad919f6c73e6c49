package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// EntryRepository интерфейс репозитория записей
type EntryRepository interface {
	GetReminderEntries(ctx context.Context, filter domain.ReminderFilter) ([]*domain.ReminderEntry, error)
	UpdateConfirmationCode(ctx context.Context, id int64, code string) error
	SetReminded(ctx context.Context, id int64) error
}

// Notifier интерфейс доставки напоминания
type Notifier interface {
	BookingReminder(ctx context.Context, entry *domain.ReminderEntry, code string) error
}

// Metrics интерфейс метрик напоминаний
type Metrics interface {
	IncReminder(outcome string)
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
